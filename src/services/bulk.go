package services

import (
	"log"
	"tsg/src/models"
	"tsg/src/types"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

const (
	// Above deferThreshold the insert leaves the request path entirely.
	deferThreshold = 5000
	// Batch sizes bound peak statement size while amortizing round-trips.
	syncBatchSize     = 500
	deferredBatchSize = 1000
)

// BulkTicketService decides the insert strategy by volume: small batches are
// written synchronously inside the request, large ones are handed to the
// scheduler and run on their own transaction after the response is sent.
type BulkTicketService struct {
	db    *gorm.DB
	sched gocron.Scheduler
}

func NewBulkTicketService(db *gorm.DB, sched gocron.Scheduler) *BulkTicketService {
	return &BulkTicketService{db: db, sched: sched}
}

func (s *BulkTicketService) Create(params *types.BulkCreateTicketRequestBody) (*types.BulkCreateTicketResponse, error) {
	if params.Amount > deferThreshold {
		if err := s.enqueue(params); err != nil {
			return nil, err
		}
		return &types.BulkCreateTicketResponse{
			Success:          true,
			Status:           types.BulkStatusPending,
			TicketsRequested: params.Amount,
		}, nil
	}
	if err := s.insert(params, syncBatchSize); err != nil {
		log.Printf("Error bulk creating %d tickets: %s\n", params.Amount, err.Error())
		return nil, err
	}
	return &types.BulkCreateTicketResponse{
		Success:        true,
		TicketsCreated: params.Amount,
	}, nil
}

// enqueue schedules a one-time job that starts immediately. The job must not
// touch any request-scoped state: by the time it runs, the request that
// queued it has been answered, so failures only reach the logs.
func (s *BulkTicketService) enqueue(params *types.BulkCreateTicketRequestBody) error {
	job, err := s.sched.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartImmediately()),
		gocron.NewTask(func() {
			if err := s.insert(params, deferredBatchSize); err != nil {
				log.Printf("Error on deferred bulk insert of %d tickets: %s\n", params.Amount, err.Error())
				return
			}
			log.Printf("Deferred bulk insert finished: %d tickets\n", params.Amount)
		}),
	)
	if err != nil {
		log.Printf("Error queueing deferred bulk insert: %s\n", err.Error())
		return err
	}
	log.Printf("Queued deferred bulk insert of %d tickets: job=%s\n", params.Amount, job.ID().String())
	return nil
}

// insert builds the rows in memory and writes them chunk by chunk within a
// single transaction: one commit for the whole set, any failed chunk rolls
// everything back.
func (s *BulkTicketService) insert(params *types.BulkCreateTicketRequestBody, batchSize int) error {
	rows := make([]models.Ticket, 0, params.Amount)
	for i := 0; i < params.Amount; i++ {
		rows = append(rows, models.Ticket{
			Name:    params.Name,
			Price:   *params.Price,
			IsValid: *params.IsValid,
			UserID:  params.UserID,
		})
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&rows, batchSize).Error
	})
}
