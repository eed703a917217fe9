// version/version.go
package version

import "fmt"

// AppName holds the name of the SDK
var AppName = "go-api-sdk-yandexpdd"

// Version holds the current version of the SDK
var Version = "0.1.0"

// UserAgentBase is the product token sent in the User-Agent header.
const UserAgentBase = "go-api-sdk-yandexpdd"

// GetAppName returns the name of the SDK
func GetAppName() string {
	return AppName
}

// GetVersion returns the current version of the SDK
func GetVersion() string {
	return Version
}

// GetUserAgentHeader returns the User-Agent header value sent with every request.
func GetUserAgentHeader() string {
	return fmt.Sprintf("%s/%s", UserAgentBase, Version)
}
