// Package populate seeds the users and categories a fresh install needs.
// Every step is skipped when its record already exists.
package populate

import (
	"context"
	"fmt"

	"github.com/junaidrashid-git/armory-api/models"
	"github.com/junaidrashid-git/armory-api/services"
	"github.com/rs/zerolog/log"
)

type seedUser struct {
	UserName string
	Email    string
	Role     models.Role
}

var (
	Users = []seedUser{
		{UserName: models.SuperAdminUserName, Email: "superadmin@armory.local", Role: models.RoleSuperAdmin},
		{UserName: "admin", Email: "admin@armory.local", Role: models.RoleAdmin},
	}
	Categories = []string{"Pistolas", "Rifles", "Escopetas", "Cuchillos", "Equipamiento"}
)

type Result struct {
	Users      int
	Categories int
}

// Run creates the missing seed records. password is used for new users only.
func Run(ctx context.Context, svc *services.Services, password string) (*Result, error) {
	res := &Result{}
	for _, u := range Users {
		created, err := svc.Users.EnsureUser(ctx, u.UserName, u.Email, password, u.Role)
		if err != nil {
			return res, fmt.Errorf("populate user %s: %w", u.UserName, err)
		}
		if created {
			res.Users++
		}
	}
	for _, name := range Categories {
		created, err := svc.Categories.EnsureCategory(ctx, name)
		if err != nil {
			return res, fmt.Errorf("populate category %s: %w", name, err)
		}
		if created {
			res.Categories++
		}
	}

	log.Info().Int("users", res.Users).Int("categories", res.Categories).Msg("populate finished")
	return res, nil
}
