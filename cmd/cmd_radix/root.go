package cmd_radix

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/rskv-p/radix/config"
)

// RootCmd is the root command for the radix store CLI.
// Subcommands talk to a running radix service over its HTTP API.
var RootCmd = &cobra.Command{
	Use:   "store",
	Short: "CLI for the radix key/value store",
}

// tokenFilePath returns the file path where the token is stored
func tokenFilePath() string {
	return "./_data/.radix_token"
}

// loadToken reads the saved token from file
func loadToken() (string, error) {
	data, err := os.ReadFile(tokenFilePath())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// apiURL returns the base URL for the API
func apiURL() string {
	return config.GetEnvStr("RADIX_API_URL", "http://localhost:8080")
}

// authedRequest builds a request carrying the saved bearer token.
func authedRequest(method, url string) (*http.Request, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, err
	}
	token, err := loadToken()
	if err != nil {
		return nil, fmt.Errorf("login required via `store login`")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req, nil
}
