package model

// SeedDefinition - правило доступа начального наполнения, привязанное к имени уровня.
type SeedDefinition struct {
	LevelName  string
	EntityType string
	Capabilities
}

// SeedData - строки, которые вставляются при первой инициализации базы.
type SeedData struct {
	Entity      Entity
	Password    string // открытый пароль; в базу попадает только хеш
	Levels      []string
	Definitions []SeedDefinition
	// Grants: уровень, который получает образцовая запись Entity.
	Grants []string
}

func DefaultSeed() SeedData {
	return SeedData{
		Entity: Entity{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john.doe@example.com",
			Phone:     "1234567890",
			Address: PostalAddress{
				Street:  "123 Main St",
				City:    "Anytown",
				State:   "Anystate",
				ZipCode: "12345",
				Country: "USA",
			},
			Credentials: Credentials{Username: "johndoe"},
			Role:        EntityRoleCustomer,
		},
		Password: "password123",
		Levels:   []string{AccessLevelAdmin, AccessLevelUser, AccessLevelGuest},
		Definitions: []SeedDefinition{
			{AccessLevelAdmin, EntityTypeEntity, Capabilities{Read: true, Write: true, Delete: true}},
			{AccessLevelUser, EntityTypeEntity, Capabilities{Read: true, Write: true, Delete: false}},
			{AccessLevelGuest, EntityTypeEntity, Capabilities{Read: true, Write: false, Delete: false}},
		},
		Grants: []string{AccessLevelAdmin},
	}
}
