package main

import (
	"fmt"
	"time"
	"tsg/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func (s *TestSuite) createTicket(body string) uint {
	w := s.request("POST", "/tickets", body)
	if w.Code != 201 {
		s.T().Fatalf("could not create ticket: status %d body %s", w.Code, w.Body.String())
	}
	return uint(gjson.Get(w.Body.String(), "id").Uint())
}

func (s *TestSuite) countTickets() int64 {
	var count int64
	s.DB.Model(&models.Ticket{}).Count(&count)
	return count
}

func (s *TestSuite) TestCreateTicket() {
	w := s.request("POST", "/tickets", `{"name": "standard", "price": 25.5, "is_valid": true}`)

	assert.Equal(s.T(), 201, w.Code)
	res := w.Body.String()
	assert.Greater(s.T(), gjson.Get(res, "id").Uint(), uint64(0))
	assert.Equal(s.T(), "standard", gjson.Get(res, "name").String())
	assert.Equal(s.T(), 25.5, gjson.Get(res, "price").Float())
	assert.True(s.T(), gjson.Get(res, "user_id").Type == gjson.Null)
}

func (s *TestSuite) TestCreateTicketWithOwner() {
	userId := s.createUser("owner", "owner@example.com")

	body := fmt.Sprintf(`{"name": "vip", "price": 100, "is_valid": true, "user_id": %d}`, userId)
	w := s.request("POST", "/tickets", body)

	assert.Equal(s.T(), 201, w.Code)
	assert.Equal(s.T(), uint64(userId), gjson.Get(w.Body.String(), "user_id").Uint())
}

func (s *TestSuite) TestCreateTicketValidation() {
	w := s.request("POST", "/tickets", `{"name": "incomplete"}`)
	assert.Equal(s.T(), 422, w.Code)

	w = s.request("POST", "/tickets", `{"name": "negative", "price": -5, "is_valid": true}`)
	assert.Equal(s.T(), 422, w.Code)
}

func (s *TestSuite) TestGetTicketByID() {
	id := s.createTicket(`{"name": "basic", "price": 5, "is_valid": true}`)

	w := s.request("GET", fmt.Sprintf("/tickets/%d", id), "")
	assert.Equal(s.T(), 200, w.Code)
	assert.Equal(s.T(), "basic", gjson.Get(w.Body.String(), "name").String())

	w = s.request("GET", "/tickets/99999", "")
	assert.Equal(s.T(), 404, w.Code)
}

func (s *TestSuite) TestListTickets() {
	for i := 0; i < 7; i++ {
		s.createTicket(fmt.Sprintf(`{"name": "t%d", "price": %d, "is_valid": true}`, i, i))
	}

	w := s.request("GET", "/tickets?page=2&page_size=5", "")
	assert.Equal(s.T(), 200, w.Code)
	res := w.Body.String()
	assert.Equal(s.T(), int64(2), gjson.Get(res, "items.#").Int())
	assert.Equal(s.T(), int64(7), gjson.Get(res, "meta.total_items").Int())
	assert.Equal(s.T(), int64(2), gjson.Get(res, "meta.total_pages").Int())
	// Deterministic order: first item of page 2 follows the last of page 1.
	assert.Equal(s.T(), "t5", gjson.Get(res, "items.0.name").String())

	w = s.request("GET", "/tickets?page_size=200", "")
	assert.Equal(s.T(), 422, w.Code)
}

func (s *TestSuite) TestBulkCreateSynchronous() {
	w := s.request("POST", "/tickets/bulk", `{"name": "batch", "price": 9.99, "is_valid": true, "amount": 10}`)

	assert.Equal(s.T(), 201, w.Code)
	res := w.Body.String()
	assert.True(s.T(), gjson.Get(res, "success").Bool())
	assert.Equal(s.T(), int64(10), gjson.Get(res, "tickets_created").Int())
	assert.Equal(s.T(), int64(10), s.countTickets())

	var tickets []models.Ticket
	s.DB.Find(&tickets)
	for _, ticket := range tickets {
		assert.Equal(s.T(), "batch", ticket.Name)
		assert.Nil(s.T(), ticket.UserID)
	}
}

func (s *TestSuite) TestBulkCreateAmountBounds() {
	w := s.request("POST", "/tickets/bulk", `{"name": "small", "price": 1, "is_valid": true, "amount": 9}`)
	assert.Equal(s.T(), 422, w.Code)

	w = s.request("POST", "/tickets/bulk", `{"name": "big", "price": 1, "is_valid": true, "amount": 10001}`)
	assert.Equal(s.T(), 422, w.Code)

	assert.Equal(s.T(), int64(0), s.countTickets())
}

func (s *TestSuite) TestBulkCreateDeferred() {
	w := s.request("POST", "/tickets/bulk", `{"name": "deferred", "price": 2.5, "is_valid": true, "amount": 6000}`)

	assert.Equal(s.T(), 202, w.Code)
	res := w.Body.String()
	assert.True(s.T(), gjson.Get(res, "success").Bool())
	assert.Equal(s.T(), "pending", gjson.Get(res, "status").String())
	assert.Equal(s.T(), int64(6000), gjson.Get(res, "tickets_requested").Int())
	assert.False(s.T(), gjson.Get(res, "tickets_created").Exists())

	assert.Eventually(s.T(), func() bool {
		return s.countTickets() == 6000
	}, 30*time.Second, 100*time.Millisecond)
}

func (s *TestSuite) TestPatchTicket() {
	userId := s.createUser("owner", "owner@example.com")
	id := s.createTicket(fmt.Sprintf(`{"name": "early bird", "price": 20, "is_valid": true, "user_id": %d}`, userId))

	w := s.request("PATCH", fmt.Sprintf("/tickets/%d", id), `{"price": 50}`)

	assert.Equal(s.T(), 200, w.Code)
	res := w.Body.String()
	assert.Equal(s.T(), 50.0, gjson.Get(res, "price").Float())
	assert.Equal(s.T(), "early bird", gjson.Get(res, "name").String())
	assert.True(s.T(), gjson.Get(res, "is_valid").Bool())
	assert.Equal(s.T(), uint64(userId), gjson.Get(res, "user_id").Uint())
}

func (s *TestSuite) TestPatchTicketInvalidUserRef() {
	id := s.createTicket(`{"name": "orphan", "price": 10, "is_valid": true}`)

	w := s.request("PATCH", fmt.Sprintf("/tickets/%d", id), `{"price": 99, "user_id": 99999}`)

	assert.Equal(s.T(), 400, w.Code)

	// Aborted update leaves the prior fields, including ownership, intact.
	var ticket models.Ticket
	s.DB.First(&ticket, id)
	assert.Equal(s.T(), 10.0, ticket.Price)
	assert.Nil(s.T(), ticket.UserID)
}

func (s *TestSuite) TestPatchTicketClearsOwner() {
	userId := s.createUser("owner", "owner@example.com")
	id := s.createTicket(fmt.Sprintf(`{"name": "owned", "price": 10, "is_valid": true, "user_id": %d}`, userId))

	w := s.request("PATCH", fmt.Sprintf("/tickets/%d", id), `{"user_id": null}`)

	assert.Equal(s.T(), 200, w.Code)
	assert.True(s.T(), gjson.Get(w.Body.String(), "user_id").Type == gjson.Null)
}

func (s *TestSuite) TestPutTicket() {
	userId := s.createUser("owner", "owner@example.com")
	id := s.createTicket(`{"name": "old", "price": 10, "is_valid": true}`)

	// Every declared field is required on a full update.
	w := s.request("PUT", fmt.Sprintf("/tickets/%d", id), `{"name": "new", "price": 0, "is_valid": false}`)
	assert.Equal(s.T(), 400, w.Code)

	body := fmt.Sprintf(`{"name": "new", "price": 0, "is_valid": false, "user_id": %d}`, userId)
	w = s.request("PUT", fmt.Sprintf("/tickets/%d", id), body)
	assert.Equal(s.T(), 200, w.Code)
	res := w.Body.String()
	assert.Equal(s.T(), "new", gjson.Get(res, "name").String())
	assert.Equal(s.T(), 0.0, gjson.Get(res, "price").Float())
	assert.False(s.T(), gjson.Get(res, "is_valid").Bool())
	assert.Equal(s.T(), uint64(userId), gjson.Get(res, "user_id").Uint())
}

func (s *TestSuite) TestPutTicketInvalidUserRef() {
	id := s.createTicket(`{"name": "stay", "price": 7, "is_valid": true}`)

	w := s.request("PUT", fmt.Sprintf("/tickets/%d", id), `{"name": "moved", "price": 1, "is_valid": true, "user_id": 99999}`)

	assert.Equal(s.T(), 400, w.Code)

	var ticket models.Ticket
	s.DB.First(&ticket, id)
	assert.Equal(s.T(), "stay", ticket.Name)
}

func (s *TestSuite) TestDeleteTicket() {
	id := s.createTicket(`{"name": "gone", "price": 1, "is_valid": true}`)

	w := s.request("DELETE", fmt.Sprintf("/tickets/%d", id), "")
	assert.Equal(s.T(), 204, w.Code)

	w = s.request("GET", fmt.Sprintf("/tickets/%d", id), "")
	assert.Equal(s.T(), 404, w.Code)

	w = s.request("DELETE", fmt.Sprintf("/tickets/%d", id), "")
	assert.Equal(s.T(), 404, w.Code)
}
