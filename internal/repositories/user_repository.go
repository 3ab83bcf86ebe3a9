package repositories

import "github.com/gyKa/commission-calculator/internal/models"

// UserRepository resolves fee-schedule clients by their external id.
// Users are shared: every operation of the same client references the
// same instance.
type UserRepository interface {
	Find(id int) *models.User
	FindOrCreate(id int, userType models.UserType) *models.User
}

type userRepository struct {
	users map[int]*models.User
}

// NewUserRepository creates an empty run-scoped user store.
func NewUserRepository() UserRepository {
	return &userRepository{users: make(map[int]*models.User)}
}

func (r *userRepository) Find(id int) *models.User {
	return r.users[id]
}

// FindOrCreate returns the stored user for id, creating one on first
// sight. The stored type wins if a later record disagrees.
func (r *userRepository) FindOrCreate(id int, userType models.UserType) *models.User {
	if u := r.users[id]; u != nil {
		return u
	}
	u := &models.User{ID: id, Type: userType}
	r.users[id] = u
	return u
}
