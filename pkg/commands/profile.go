package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tableflip.dev/memovault/pkg/entry"
	"tableflip.dev/memovault/pkg/store"
	"tableflip.dev/memovault/pkg/user"
)

func addProfile(topLevel *cobra.Command) {
	var username, email string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the local profile",
		Example: `
memovault profile
memovault profile --username sam --email sam@example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			u, err := p.ReadUser()
			if err != nil {
				return err
			}

			if username == "" && email == "" {
				if u == nil {
					fmt.Println("no profile yet, set one with --username")
					return nil
				}
				fmt.Printf("%s <%s> since %s\n", u.Username, u.Email, u.CreatedAt)
				return nil
			}

			if u == nil {
				u = &user.Profile{
					ID:          uuid.NewString(),
					CreatedAt:   entry.Now(),
					Preferences: user.DefaultPreferences(),
				}
			}
			if username != "" {
				u.Username = username
			}
			if email != "" {
				u.Email = email
			}
			return p.WriteUser(u)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Set the display name.")
	cmd.Flags().StringVar(&email, "email", "", "Set the contact email.")

	topLevel.AddCommand(cmd)
}
