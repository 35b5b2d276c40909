package config

// apiConf holds API-related configuration
type apiConf struct {
	// UsersEnabled controls whether the staff-user management API is
	// mounted
	UsersEnabled bool `yaml:"users_enabled"`
	// DownloadBaseURL is the public base URL download links are built
	// from
	DownloadBaseURL string `yaml:"download_base_url"`
	// LoginPath is where unauthenticated dashboard requests are
	// redirected to
	LoginPath string `yaml:"login_path"`
}

var defaultAPIConf = apiConf{
	UsersEnabled: true,
	LoginPath:    "/staff",
}
