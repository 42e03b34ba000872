// Package router is the command-dispatch layer: it applies typed intents
// against the registry and the conversation store and pushes the resulting
// events to their recipients. One mutex serializes every mutating operation,
// so no two intents interleave partial mutation of a message or conversation.
package router

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/numeshj/chatting-app/internal/metrics"
	"github.com/numeshj/chatting-app/internal/models"
	"github.com/numeshj/chatting-app/internal/protocol"
	"github.com/numeshj/chatting-app/internal/registry"
	"github.com/numeshj/chatting-app/internal/store"
)

type Router struct {
	mu       sync.Mutex
	registry *registry.Registry
	store    *store.Store
	log      *zap.SugaredLogger

	// id and clock authority, swappable in tests
	now   func() time.Time
	newID func() string
}

func New(log *zap.SugaredLogger) *Router {
	return &Router{
		registry: registry.New(),
		store:    store.New(),
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Dispatch applies one inbound intent for sess. Intents arriving before the
// session has completed a connect are dropped, as are unrecognized kinds.
func (r *Router) Dispatch(sess *registry.Session, in protocol.Intent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if in.Type == protocol.IntentConnect {
		r.connect(sess, in.ID, in.Name)
		return
	}
	if sess.ID == 0 {
		return
	}
	switch in.Type {
	case protocol.IntentLookupUser:
		r.lookupUser(sess, in.ID)
	case protocol.IntentGetMessages:
		r.fetchHistory(sess, in.WithID)
	case protocol.IntentMessage:
		r.send(sess, in.Destination, in.Text)
	case protocol.IntentMarkRead:
		r.markRead(sess, in.With)
	case protocol.IntentEditMessage:
		r.edit(sess, in.MessageID, in.With, in.NewText)
	case protocol.IntentDeleteMessage:
		r.deleteMessage(sess, in.MessageID, in.With, in.Scope)
	case protocol.IntentDeleteChat:
		r.deleteChat(sess, in.With, in.Scope)
	case protocol.IntentTyping, protocol.IntentTypingStop:
		r.typing(sess, in.Type, in.With)
	}
}

// Disconnect drops sess from the registry. A close event from a session that
// was already displaced by takeover leaves the newer session untouched.
func (r *Router) Disconnect(sess *registry.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.registry.Remove(sess) {
		r.log.Infow("user disconnected", "id", sess.ID)
	}
}

// push marshals the event under the router lock, so the frame is a snapshot
// of the state at emit time, and queues it best-effort. A recipient whose
// connection has since closed simply misses the frame.
func (r *Router) push(sess *registry.Session, event any) {
	frame, err := json.Marshal(event)
	if err != nil {
		r.log.Errorw("marshal event", "err", err)
		return
	}
	sess.Push(frame)
}

func (r *Router) connect(sess *registry.Session, id int, name string) {
	if id <= 0 {
		r.push(sess, protocol.NewConnectError("a positive id is required"))
		return
	}
	if name == "" {
		name = models.DisplayName(id)
	}
	if sess.ID != 0 && sess.ID != id {
		// same socket reconnecting as a different identity
		r.registry.Remove(sess)
	}
	if prev := r.registry.Bind(id, name, sess); prev != nil {
		r.push(prev, protocol.NewSessionReplaced())
		prev.CloseConn()
		r.log.Infow("session replaced", "id", id)
	}
	r.push(sess, protocol.NewConnectDone(id, name))
	if summaries := r.store.Summaries(id); len(summaries) > 0 {
		r.push(sess, protocol.NewConversationSummaries(summaries))
	}
	r.log.Infow("user connected", "id", id, "name", name)
}

func (r *Router) lookupUser(sess *registry.Session, id int) {
	if other, ok := r.registry.Lookup(id); ok {
		r.push(sess, protocol.NewUserInfo(id, other.Name))
		return
	}
	r.push(sess, protocol.NewUserUnknown(id))
}

func (r *Router) send(sess *registry.Session, destID int, text string) {
	if destID <= 0 {
		return
	}
	msg := &models.Message{
		ID:          r.newID(),
		Text:        text,
		Source:      models.Identity{ID: sess.ID, Name: sess.Name},
		Destination: destID,
		Time:        r.now(),
	}
	r.store.Append(msg)
	metrics.MessagesStored.Inc()

	if dest, ok := r.registry.Lookup(destID); ok {
		// destination gets the pre-delivery snapshot
		r.push(dest, protocol.NewMessageEvent(*msg))
		msg.MarkDelivered()
		metrics.MessagesDelivered.Inc()
		r.push(sess, protocol.NewMessageStatus(msg.ID, protocol.StatusDelivered, destID))
	}
	// canonical echo: the source never fabricates its own copy
	r.push(sess, protocol.NewMessageEvent(*msg))
	r.log.Infow("message stored", "from", sess.ID, "to", destID, "messageId", msg.ID)
}

func (r *Router) fetchHistory(sess *registry.Session, otherID int) {
	if otherID <= 0 {
		return
	}
	msgs := r.store.Messages(sess.ID, otherID)
	for _, m := range msgs {
		if m.Destination != sess.ID {
			continue
		}
		if m.MarkDelivered() {
			metrics.MessagesDelivered.Inc()
			r.notifyStatus(m, protocol.StatusDelivered, sess.ID)
		}
	}
	r.push(sess, protocol.NewMessages(msgs))
}

func (r *Router) markRead(sess *registry.Session, otherID int) {
	if otherID <= 0 {
		return
	}
	for _, m := range r.store.Messages(sess.ID, otherID) {
		if m.Destination != sess.ID {
			continue
		}
		if m.MarkDelivered() {
			metrics.MessagesDelivered.Inc()
			r.notifyStatus(m, protocol.StatusDelivered, sess.ID)
		}
		if m.MarkRead() {
			r.notifyStatus(m, protocol.StatusRead, sess.ID)
		}
	}
}

// notifyStatus tells a message's sender, if connected, that its status moved.
func (r *Router) notifyStatus(m *models.Message, status string, byID int) {
	if src, ok := r.registry.Lookup(m.Source.ID); ok {
		r.push(src, protocol.NewMessageStatus(m.ID, status, byID))
	}
}

func (r *Router) edit(sess *registry.Session, messageID string, otherID int, newText string) {
	newText = strings.TrimSpace(newText)
	if messageID == "" || otherID <= 0 || newText == "" {
		return
	}
	m := r.store.Find(sess.ID, otherID, messageID)
	if m == nil {
		r.push(sess, protocol.NewEditError(messageID, "message not found"))
		return
	}
	if m.Source.ID != sess.ID || m.Deleted {
		r.push(sess, protocol.NewEditError(messageID, "not allowed"))
		return
	}
	at := r.now()
	m.Edit(newText, at)
	ev := protocol.NewMessageEdited(messageID, newText, otherID, at)
	r.push(sess, ev)
	if other, ok := r.registry.Lookup(otherID); ok {
		r.push(other, ev)
	}
}

func (r *Router) deleteMessage(sess *registry.Session, messageID string, otherID int, scope string) {
	if messageID == "" || otherID <= 0 {
		return
	}
	switch scope {
	case protocol.ScopeMe:
		// no shared-state mutation: the requester's client hides it locally
		r.push(sess, protocol.NewMessageDeletedLocal(messageID))
	case protocol.ScopeAll:
		m := r.store.Find(sess.ID, otherID, messageID)
		if m == nil {
			r.push(sess, protocol.NewDeleteError(messageID, "message not found"))
			return
		}
		if m.Source.ID != sess.ID {
			r.push(sess, protocol.NewDeleteError(messageID, "not allowed"))
			return
		}
		m.Tombstone()
		ev := protocol.NewMessageDeleted(messageID, otherID)
		r.push(sess, ev)
		if other, ok := r.registry.Lookup(otherID); ok {
			r.push(other, ev)
		}
		r.log.Infow("message deleted", "messageId", messageID, "by", sess.ID)
	}
}

func (r *Router) deleteChat(sess *registry.Session, otherID int, scope string) {
	if otherID <= 0 {
		return
	}
	switch scope {
	case protocol.ScopeMe:
		r.push(sess, protocol.NewChatDeletedLocal(otherID))
	case protocol.ScopeAll:
		// either party may wipe the shared log; broadcast even when it was
		// already empty so both clients converge
		r.store.DeleteConversation(sess.ID, otherID)
		ev := protocol.NewChatDeleted(otherID)
		r.push(sess, ev)
		if other, ok := r.registry.Lookup(otherID); ok {
			r.push(other, ev)
		}
		r.log.Infow("chat deleted", "between", sess.ID, "and", otherID)
	}
}

func (r *Router) typing(sess *registry.Session, kind string, otherID int) {
	if otherID <= 0 || otherID == sess.ID {
		return
	}
	// ephemeral: forwarded only while the destination is connected, never queued
	if other, ok := r.registry.Lookup(otherID); ok {
		r.push(other, protocol.NewTyping(kind, sess.ID))
	}
}
