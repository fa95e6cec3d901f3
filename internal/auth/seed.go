// internal/auth/seed.go
package auth

// DemoOperators returns the predefined branch operators the system
// ships with. Secrets are sealed for PlaintextScheme.
func DemoOperators() []Credential {
	return []Credential{
		{
			Session: Session{
				ID:           "1",
				Email:        "admin@bancoexpres.com",
				Name:         "María González",
				JobTitle:     "Asesora Comercial",
				Branch:       "Cúcuta Centro",
				Phone:        "300-456-7890",
				RegisteredOn: "2023-01-15",
				Avatar:       "/profile.avif",
				Role:         RoleAdministrator,
			},
			Secret: "admin123",
		},
		{
			Session: Session{
				ID:           "2",
				Email:        "usuario@bancoexpres.com",
				Name:         "Carlos Mendoza",
				JobTitle:     "Cajero",
				Branch:       "Cúcuta Norte",
				Phone:        "300-789-0123",
				RegisteredOn: "2023-06-20",
				Role:         RoleStandard,
			},
			Secret: "usuario123",
		},
	}
}
