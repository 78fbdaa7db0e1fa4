package sim

import (
	"strings"

	"github.com/zyedidia/generic/mapset"

	"growify/pkg/game/city"
)

// App is an in-memory host application holding at most one city.
type App struct {
	city   *City
	cheats *CheatCodeManager
	server *MessageServer
}

// NewApp creates a host for c. c may be nil when no city is loaded.
func NewApp(c *City) *App {
	return &App{
		city:   c,
		cheats: NewCheatCodeManager(),
		server: NewMessageServer(),
	}
}

// City implements city.App
func (a *App) City() city.City {
	if a.city == nil {
		return nil
	}
	return a.city
}

// CheatCodeManager implements city.App
func (a *App) CheatCodeManager() city.CheatCodeManager {
	return a.cheats
}

// Cheats returns the concrete cheat code manager
func (a *App) Cheats() *CheatCodeManager {
	return a.cheats
}

// MessageServer returns the host message server
func (a *App) MessageServer() *MessageServer {
	return a.server
}

// InitCity announces that the city finished loading
func (a *App) InitCity() {
	a.server.Post(city.Message{Type: city.MessagePostCityInit})
}

// ShutdownCity announces that the city is about to close
func (a *App) ShutdownCity() {
	a.server.Post(city.Message{Type: city.MessagePreCityShutdown})
}

// SubmitCheat delivers a typed cheat line. Returns false if no registered cheat matches.
func (a *App) SubmitCheat(line string) bool {
	return a.cheats.Submit(line)
}

// MessageServer fans host messages out to subscribers.
type MessageServer struct {
	subscribers map[uint32]mapset.Set[city.MessageTarget]
}

// NewMessageServer creates an empty message server
func NewMessageServer() *MessageServer {
	return &MessageServer{subscribers: make(map[uint32]mapset.Set[city.MessageTarget])}
}

// AddNotification implements city.MessageServer
func (s *MessageServer) AddNotification(target city.MessageTarget, messageType uint32) bool {
	if target == nil {
		return false
	}
	set, ok := s.subscribers[messageType]
	if !ok {
		set = mapset.New[city.MessageTarget]()
		s.subscribers[messageType] = set
	}
	set.Put(target)
	return true
}

// RemoveNotification unsubscribes target from a message type
func (s *MessageServer) RemoveNotification(target city.MessageTarget, messageType uint32) {
	if set, ok := s.subscribers[messageType]; ok {
		set.Remove(target)
	}
}

// Post delivers msg to every subscriber of its type
func (s *MessageServer) Post(msg city.Message) {
	set, ok := s.subscribers[msg.Type]
	if !ok {
		return
	}
	set.Each(func(target city.MessageTarget) {
		target.DoMessage(msg)
	})
}

// CheatCodeManager matches typed lines against registered cheat names.
type CheatCodeManager struct {
	codes   map[uint32]string
	targets mapset.Set[city.MessageTarget]
}

// NewCheatCodeManager creates a cheat manager with no cheats
func NewCheatCodeManager() *CheatCodeManager {
	return &CheatCodeManager{
		codes:   make(map[uint32]string),
		targets: mapset.New[city.MessageTarget](),
	}
}

// AddNotification implements city.CheatCodeManager
func (m *CheatCodeManager) AddNotification(target city.MessageTarget) {
	if target != nil {
		m.targets.Put(target)
	}
}

// RemoveNotification implements city.CheatCodeManager
func (m *CheatCodeManager) RemoveNotification(target city.MessageTarget) {
	m.targets.Remove(target)
}

// RegisterCheatCode implements city.CheatCodeManager
func (m *CheatCodeManager) RegisterCheatCode(id uint32, name string) {
	m.codes[id] = name
}

// UnregisterCheatCode implements city.CheatCodeManager
func (m *CheatCodeManager) UnregisterCheatCode(id uint32) {
	delete(m.codes, id)
}

// IsRegistered returns true if a cheat with the given ID is registered
func (m *CheatCodeManager) IsRegistered(id uint32) bool {
	_, ok := m.codes[id]
	return ok
}

// Submit finds the cheat named by the first word of line, ignoring case,
// and sends it to every notification target with the whole line attached.
func (m *CheatCodeManager) Submit(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	for id, name := range m.codes {
		if !strings.EqualFold(fields[0], name) {
			continue
		}
		msg := city.Message{Type: city.MessageCheatIssued, Data1: id, Text: line}
		m.targets.Each(func(target city.MessageTarget) {
			target.DoMessage(msg)
		})
		return true
	}

	return false
}
