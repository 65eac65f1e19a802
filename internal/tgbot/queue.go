package tgbot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const chatQueueCap = 64

// chatQueues serializes update handling per chat: updates for one chat are
// handled in arrival order, one at a time (including the blocking download),
// while different chats proceed concurrently. Workers are spawned on demand
// and retire once their queue drains.
type chatQueues struct {
	handle func(tgbotapi.Update)
	log    *zap.Logger

	mu     sync.Mutex
	queues map[int64]chan tgbotapi.Update
}

func newChatQueues(handle func(tgbotapi.Update), log *zap.Logger) *chatQueues {
	return &chatQueues{
		handle: handle,
		log:    log,
		queues: make(map[int64]chan tgbotapi.Update),
	}
}

func (cq *chatQueues) enqueue(chatID int64, update tgbotapi.Update) {
	cq.mu.Lock()
	defer cq.mu.Unlock()

	q, ok := cq.queues[chatID]
	if !ok {
		q = make(chan tgbotapi.Update, chatQueueCap)
		cq.queues[chatID] = q
		go cq.drain(chatID, q)
	}

	select {
	case q <- update:
	default:
		// A chat this far behind is flooding; drop rather than stall the
		// poll loop for everyone else.
		cq.log.Warn("chat queue full, dropping update", zap.Int64("chat_id", chatID))
	}
}

func (cq *chatQueues) drain(chatID int64, q chan tgbotapi.Update) {
	for {
		select {
		case u := <-q:
			cq.safeHandle(u)
		default:
			// Looks empty; confirm under the lock so enqueue cannot slip an
			// update into a queue nobody drains anymore.
			cq.mu.Lock()
			select {
			case u := <-q:
				cq.mu.Unlock()
				cq.safeHandle(u)
			default:
				delete(cq.queues, chatID)
				cq.mu.Unlock()
				return
			}
		}
	}
}

func (cq *chatQueues) safeHandle(u tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			cq.log.Error("handler panic", zap.Any("panic", r))
		}
	}()
	cq.handle(u)
}
