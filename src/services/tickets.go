package services

import (
	"errors"
	"log"
	"tsg/src/models"
	"tsg/src/models/scopes"
	"tsg/src/types"

	"gorm.io/gorm"
)

type TicketService struct {
	db *gorm.DB
}

func NewTicketService(db *gorm.DB) *TicketService {
	return &TicketService{db: db}
}

func (s *TicketService) List(p types.PaginationParams) ([]models.Ticket, int64, error) {
	var tickets []models.Ticket
	var total int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Ticket{}).Count(&total).Error; err != nil {
			return err
		}
		return tx.Scopes(scopes.Window(p.Skip(), p.Limit())).Find(&tickets).Error
	})
	if err != nil {
		log.Printf("Error retrieving Tickets: %s\n", err.Error())
		return nil, 0, err
	}
	return tickets, total, nil
}

func (s *TicketService) GetByID(id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := s.db.
		Scopes(scopes.WithID(id)).
		First(&ticket).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("Error retrieving Ticket [%d]: %s\n", id, err.Error())
		return nil, err
	}
	return &ticket, nil
}

// Create persists a single ticket. An absent owner is valid; a bad
// owner reference is left to the foreign key and translated.
func (s *TicketService) Create(params *types.CreateTicketRequestBody) (*models.Ticket, error) {
	ticket := models.Ticket{
		Name:    params.Name,
		Price:   *params.Price,
		IsValid: *params.IsValid,
		UserID:  params.UserID,
	}
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&ticket).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrInvalidUserRef
		}
		log.Printf("Error creating Ticket: %s\n", err.Error())
		return nil, err
	}
	return &ticket, nil
}

// Update applies the given column set. A user_id present in the set and
// non-null is validated against users inside the same transaction before
// any column is written, so an invalid reference mutates nothing.
func (s *TicketService) Update(id uint, fields map[string]any) (*models.Ticket, error) {
	var ticket models.Ticket
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(scopes.WithID(id)).First(&ticket).Error; err != nil {
			return err
		}
		if ref, ok := fields["user_id"]; ok {
			if userId, ok := ref.(*uint); ok && userId != nil {
				var count int64
				if err := tx.Model(&models.User{}).Where("id = ?", *userId).Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					return ErrInvalidUserRef
				}
			}
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&ticket).Updates(fields).Error; err != nil {
			return err
		}
		return tx.Scopes(scopes.WithID(id)).First(&ticket).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		case errors.Is(err, ErrInvalidUserRef):
			return nil, ErrInvalidUserRef
		case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, ErrIntegrity
		}
		log.Printf("Error updating Ticket [%d]: %s\n", id, err.Error())
		return nil, err
	}
	return &ticket, nil
}

func (s *TicketService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var ticket models.Ticket
		if err := tx.Scopes(scopes.WithID(id)).First(&ticket).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Delete(&ticket).Error
	})
}
