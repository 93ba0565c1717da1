package build

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
	BuiltBy = "unknown"
)

// ConfigFolderName is the folder under the home directory holding kubeconn settings.
const ConfigFolderName = ".kubeconn"

func IsDev() bool {
	return Version == "dev"
}

// BinaryName returns the name of the kubeconn binary, prefixed with 'd' for dev builds.
func BinaryName() string {
	if IsDev() {
		return "dkubeconn"
	}
	return "kubeconn"
}
