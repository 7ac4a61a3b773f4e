package services

import (
	"errors"
	"log"
	"tsg/src/models"
	"tsg/src/models/scopes"
	"tsg/src/types"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns one page of users together with the total row count, both
// read within the same transaction.
func (s *UserService) List(p types.PaginationParams) ([]models.User, int64, error) {
	var users []models.User
	var total int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Count(&total).Error; err != nil {
			return err
		}
		return tx.Scopes(scopes.Window(p.Skip(), p.Limit())).Find(&users).Error
	})
	if err != nil {
		log.Printf("Error retrieving Users: %s\n", err.Error())
		return nil, 0, err
	}
	return users, total, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.
		Preload("Tickets").
		Scopes(scopes.WithID(id)).
		First(&user).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("Error retrieving User [%d]: %s\n", id, err.Error())
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.
		Where("email = ?", email).
		First(&user).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create hashes the password before anything touches the database; the
// plaintext is never persisted, serialized or logged. The duplicate check
// runs inside the insert transaction, the unique index covers the race.
func (s *UserService) Create(params *types.CreateUserRequestBody) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username: params.Username,
		Email:    params.Email,
		Password: string(hashed),
	}
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", params.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateEmail
		}
		return tx.Create(&user).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

// Update applies the given column set to an existing user. An integrity
// violation the pre-checks missed rolls the transaction back and comes out
// as ErrIntegrity.
func (s *UserService) Update(id uint, fields map[string]any) (*models.User, error) {
	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(scopes.WithID(id)).First(&user).Error; err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&user).Updates(fields).Error; err != nil {
			return err
		}
		return tx.Scopes(scopes.WithID(id)).First(&user).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, ErrIntegrity
		}
		log.Printf("Error updating User [%d]: %s\n", id, err.Error())
		return nil, err
	}
	return &user, nil
}

// Delete removes a user. The tickets foreign key is not cascaded, so a
// user that still owns tickets stays put and the violation surfaces as
// ErrIntegrity; callers detach the tickets first.
func (s *UserService) Delete(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Scopes(scopes.WithID(id)).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Delete(&user).Error
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrIntegrity
	}
	return err
}
