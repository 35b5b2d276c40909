package staffapi

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/xerodma/panel/storage/model"
)

// In-memory store fakes. They mirror the storage-layer semantics closely
// enough to exercise the handlers, including the typed errors the handlers
// switch on. Setting failing simulates an unavailable database.

func testHash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}

func testHashPtr(password string) *string {
	h := testHash(password)
	return &h
}

type fakeUsers struct {
	byName  map[string]*model.User
	failing bool
}

func (f *fakeUsers) Count() (int64, error) {
	return int64(len(f.byName)), nil
}

func (f *fakeUsers) List() ([]model.User, error) {
	if f.failing {
		return nil, errStorageDown
	}
	out := make([]model.User, 0, len(f.byName))
	for _, u := range f.byName {
		c := *u
		c.PasswordHash = ""
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeUsers) Get(username string) (*model.User, error) {
	if f.failing {
		return nil, errStorageDown
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, model.NotFoundErrorFmt("user not found: %s", username)
	}
	c := *u
	c.PasswordHash = ""
	return &c, nil
}

func (f *fakeUsers) Create(username, password, role, displayName string) (*model.User, error) {
	if f.failing {
		return nil, errStorageDown
	}
	if _, ok := f.byName[username]; ok {
		return nil, model.AlreadyExistsErrorFmt("user already exists: %s", username)
	}
	if role == "" {
		role = model.RoleStaff
	}
	u := &model.User{
		ID:           uint(len(f.byName) + 1),
		Username:     username,
		PasswordHash: testHash(password),
		Role:         role,
		DisplayName:  displayName,
	}
	f.byName[username] = u
	c := *u
	c.PasswordHash = ""
	return &c, nil
}

func (f *fakeUsers) Update(username string, role, displayName, newPassword *string, disabled *bool) (*model.User, error) {
	if f.failing {
		return nil, errStorageDown
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, model.NotFoundErrorFmt("user not found: %s", username)
	}
	if role != nil {
		u.Role = *role
	}
	if displayName != nil {
		u.DisplayName = *displayName
	}
	if newPassword != nil {
		u.PasswordHash = testHash(*newPassword)
	}
	if disabled != nil {
		u.Disabled = *disabled
	}
	c := *u
	c.PasswordHash = ""
	return &c, nil
}

func (f *fakeUsers) Delete(username string) error {
	if f.failing {
		return errStorageDown
	}
	if _, ok := f.byName[username]; !ok {
		return model.NotFoundErrorFmt("user not found: %s", username)
	}
	delete(f.byName, username)
	return nil
}

func (f *fakeUsers) Authenticate(username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, model.MissingCredentialsError("username and password are required")
	}
	if f.failing {
		return nil, errStorageDown
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, model.InvalidCredentialsError("invalid credentials")
	}
	if u.Disabled || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, model.InvalidCredentialsError("invalid credentials")
	}
	c := *u
	c.PasswordHash = ""
	return &c, nil
}

type fakeGuides struct {
	byID    map[string]*model.Guide
	failing bool
}

func (f *fakeGuides) List() ([]model.Guide, error) {
	if f.failing {
		return nil, errStorageDown
	}
	out := make([]model.Guide, 0, len(f.byID))
	for _, g := range f.byID {
		c := *g
		c.PasswordHash = nil
		if c.PasswordProtected {
			c.Content = ""
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeGuides) Get(guideID string) (*model.Guide, error) {
	if f.failing {
		return nil, errStorageDown
	}
	g, ok := f.byID[guideID]
	if !ok {
		return nil, model.NotFoundErrorFmt("guide not found: %s", guideID)
	}
	c := *g
	c.PasswordHash = nil
	return &c, nil
}

func (f *fakeGuides) Create(guide model.Guide, password string) (*model.Guide, error) {
	if f.failing {
		return nil, errStorageDown
	}
	if _, ok := f.byID[guide.GuideID]; ok {
		return nil, model.AlreadyExistsErrorFmt("guide already exists: %s", guide.GuideID)
	}
	if password != "" {
		guide.PasswordHash = testHashPtr(password)
		guide.PasswordProtected = true
	}
	g := guide
	f.byID[guide.GuideID] = &g
	c := g
	c.PasswordHash = nil
	return &c, nil
}

func (f *fakeGuides) Update(guideID string, upd model.GuideUpdate) (*model.Guide, error) {
	if f.failing {
		return nil, errStorageDown
	}
	g, ok := f.byID[guideID]
	if !ok {
		return nil, model.NotFoundErrorFmt("guide not found: %s", guideID)
	}
	if upd.Title != nil {
		g.Title = *upd.Title
	}
	if upd.Description != nil {
		g.Description = *upd.Description
	}
	if upd.Category != nil {
		g.Category = *upd.Category
	}
	if upd.Content != nil {
		g.Content = *upd.Content
	}
	if upd.AuthorName != nil {
		g.AuthorName = *upd.AuthorName
	}
	c := *g
	c.PasswordHash = nil
	return &c, nil
}

func (f *fakeGuides) Delete(guideID string) error {
	if f.failing {
		return errStorageDown
	}
	if _, ok := f.byID[guideID]; !ok {
		return model.NotFoundErrorFmt("guide not found: %s", guideID)
	}
	delete(f.byID, guideID)
	return nil
}

func (f *fakeGuides) CheckAccess(guideID, password string) (model.GuideAccess, error) {
	if f.failing {
		return model.AccessDeniedInvalidPassword, errStorageDown
	}
	g, ok := f.byID[guideID]
	if !ok {
		return model.AccessDeniedInvalidPassword, model.NotFoundErrorFmt("guide not found: %s", guideID)
	}
	if !g.PasswordProtected {
		return model.AccessGranted, nil
	}
	if password == "" {
		return model.AccessDeniedMissingPassword, nil
	}
	if g.PasswordHash == nil || bcrypt.CompareHashAndPassword([]byte(*g.PasswordHash), []byte(password)) != nil {
		return model.AccessDeniedInvalidPassword, nil
	}
	return model.AccessGranted, nil
}

func (f *fakeGuides) SetSecret(guideID, newPassword string) error {
	if f.failing {
		return errStorageDown
	}
	g, ok := f.byID[guideID]
	if !ok {
		return model.NotFoundErrorFmt("guide not found: %s", guideID)
	}
	if newPassword == "" {
		g.PasswordHash = nil
		g.PasswordProtected = false
		return nil
	}
	g.PasswordHash = testHashPtr(newPassword)
	g.PasswordProtected = true
	return nil
}

type fakeFiles struct {
	byID    map[string]*model.FileAsset
	nextID  int
	failing bool
}

func (f *fakeFiles) List() ([]model.FileAsset, error) {
	if f.failing {
		return nil, errStorageDown
	}
	out := make([]model.FileAsset, 0, len(f.byID))
	for _, a := range f.byID {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeFiles) Get(fileID string) (*model.FileAsset, error) {
	if f.failing {
		return nil, errStorageDown
	}
	a, ok := f.byID[fileID]
	if !ok {
		return nil, model.NotFoundErrorFmt("file not found: %s", fileID)
	}
	c := *a
	return &c, nil
}

func (f *fakeFiles) Create(name string, size int64, contentType string) (*model.FileAsset, error) {
	if f.failing {
		return nil, errStorageDown
	}
	f.nextID++
	a := &model.FileAsset{
		FileID:      fmtID(f.nextID),
		Name:        name,
		Size:        size,
		ContentType: contentType,
	}
	f.byID[a.FileID] = a
	c := *a
	return &c, nil
}

func (f *fakeFiles) Delete(fileID string) error {
	if f.failing {
		return errStorageDown
	}
	if _, ok := f.byID[fileID]; !ok {
		return model.NotFoundErrorFmt("file not found: %s", fileID)
	}
	delete(f.byID, fileID)
	return nil
}

func (f *fakeFiles) MintDownloadSlug(fileID string) (*model.FileAsset, error) {
	if f.failing {
		return nil, errStorageDown
	}
	a, ok := f.byID[fileID]
	if !ok {
		return nil, model.NotFoundErrorFmt("file not found: %s", fileID)
	}
	f.nextID++
	slug := "slug" + fmtID(f.nextID)
	a.DownloadSlug = &slug
	c := *a
	return &c, nil
}

func (f *fakeFiles) CountDownload(fileID string) error {
	if f.failing {
		return errStorageDown
	}
	a, ok := f.byID[fileID]
	if !ok {
		return model.NotFoundErrorFmt("file not found: %s", fileID)
	}
	a.Downloads++
	return nil
}
