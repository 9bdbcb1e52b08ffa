package command

import (
	"fmt"
	"time"

	"kushfilms/cmd/kushctl/authentication"
	"kushfilms/cmd/kushctl/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// auth.go handles login and logout against a running API.

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the API and store the token in the OS keyring",
	RunE: func(cmd *cobra.Command, args []string) error {
		// get data from flags
		var req client.LoginRequest
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")

		httpClient := client.NewHTTPClient(apiURL)
		resp, err := httpClient.Login(cmd.Context(), &req)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		err = authentication.StoreToken(&authentication.StoredCredentials{
			Token:    resp.Token,
			Email:    resp.User.Email,
			Role:     resp.User.Role,
			APIURL:   apiURL,
			StoredAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}

		color.Green("✓ Logged in as %s (%s)", resp.User.Email, resp.User.Role)
		return nil
	},
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authentication.DeleteToken(); err != nil {
			return err
		}
		color.Green("✓ Logged out")
		return nil
	},
}

// whoamiCmd shows who the stored token belongs to
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account behind the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := authentication.GetToken()
		if err != nil {
			return err
		}
		user, err := client.NewHTTPClient(creds.APIURL).Me(cmd.Context(), creds.Token)
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s> %s\n", user.Name, user.Email, user.Role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().StringP("email", "e", "", "Account email")
	loginCmd.Flags().StringP("password", "p", "", "Account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
