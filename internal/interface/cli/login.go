package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend and store the token",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, store, err := newClient(cfg)
		if err != nil {
			return err
		}

		if store.Present() {
			fmt.Println("Already logged in. Use 'tripdeck logout' first.")
			return nil
		}

		email := loginEmail
		if email == "" {
			fmt.Print("Email: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading email: %w", err)
			}
			email = strings.TrimSpace(line)
		}
		if email == "" {
			return fmt.Errorf("email is required")
		}

		fmt.Print("Password: ")
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		if len(pw) == 0 {
			return fmt.Errorf("password is required")
		}

		token, err := client.Login(cmd.Context(), email, string(pw))
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		if err := store.Set(token); err != nil {
			return fmt.Errorf("storing token: %w", err)
		}

		fmt.Printf("Logged in as %s\n", email)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted if omitted)")
	rootCmd.AddCommand(loginCmd)
}
