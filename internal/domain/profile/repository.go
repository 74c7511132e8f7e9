package profile

import "context"

// Repository guarda un único perfil y sus preferencias.
// Get/GetPreferences devuelven ErrNotFound si nunca se guardó nada.
type Repository interface {
	Get(ctx context.Context) (UserProfile, error)
	Save(ctx context.Context, p UserProfile) error

	GetPreferences(ctx context.Context) (NotificationPreferences, error)
	SavePreferences(ctx context.Context, p NotificationPreferences) error
}
