package profile

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpsertProfile(ctx context.Context, profile *Profile) error
	GetPreferences(ctx context.Context, userID string) (Preferences, error)
	ReplacePreferences(ctx context.Context, userID string, prefs Preferences) error
}
