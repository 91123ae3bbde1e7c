package session

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/andreeabea/FoodDeliveryAppServer/internal/apperr"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/notify"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/service"
	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

// Services bundles everything a session dispatches into.
type Services struct {
	Users       *service.Users
	Restaurants *service.Restaurants
	Items       *service.Items
	Orders      *service.Orders
	Ratings     *service.Ratings
}

// Session owns one accepted connection: a blocking line reader and a
// mutex-guarded writer. The write lock serialises the loop's own replies
// against asynchronous hub pushes on the same socket.
type Session struct {
	ID string

	conn     net.Conn
	reader   *bufio.Scanner
	writeMu  sync.Mutex
	logger   *zap.SugaredLogger
	registry *Registry
	hub      *notify.Hub
	services Services

	// courierID is set once a delivery user logs in on this session.
	courierID int
}

func New(conn net.Conn, services Services, hub *notify.Hub, registry *Registry, logger *zap.SugaredLogger) *Session {
	return &Session{
		ID:       uuid.New().String(),
		conn:     conn,
		reader:   bufio.NewScanner(conn),
		logger:   logger,
		registry: registry,
		hub:      hub,
		services: services,
	}
}

// Run is the session loop: one line in, one line out, until the client
// goes away or an unrecoverable error occurs. Faults from the taxonomy
// become error messages and the loop continues.
func (s *Session) Run() {
	defer s.teardown()

	for s.reader.Scan() {
		line := s.reader.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var reply models.Message
		var received models.Message
		if err := json.Unmarshal(line, &received); err != nil {
			s.logger.Debugw("malformed message", "session", s.ID, "error", err)
			reply = faultMessage(apperr.New(apperr.InvalidData, "malformed message"))
		} else {
			var err error
			reply, err = s.dispatch(received)
			if err != nil {
				if _, ok := apperr.KindOf(err); ok {
					reply = faultMessage(err)
				} else {
					s.logger.Errorw("session failed", "session", s.ID,
						"command", received.Header, "error", err)
					return
				}
			}
		}

		if err := s.writeMessage(reply); err != nil {
			s.logger.Infow("client disconnected", "session", s.ID, "error", err)
			return
		}
	}
}

func (s *Session) teardown() {
	if s.courierID != 0 {
		s.hub.Unsubscribe(s.courierID, s)
	}
	s.registry.Remove(s.ID)
	_ = s.conn.Close()
	s.logger.Infow("session closed", "session", s.ID)
}

// Close unblocks the read loop; teardown does the rest.
func (s *Session) Close() {
	_ = s.conn.Close()
}

// Push implements notify.Sink, letting the hub write an unsolicited line
// on this session's socket.
func (s *Session) Push(message models.Message) error {
	return s.writeMessage(message)
}

func (s *Session) writeMessage(message models.Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_, err = s.conn.Write(append(data, '\n'))
	return err
}

func faultMessage(err error) models.Message {
	kind, _ := apperr.KindOf(err)
	return models.Message{
		Header:      string(kind),
		ObjectsJSON: []string{err.Error()},
	}
}
