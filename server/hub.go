package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"thermaldesign/calculator"
	"thermaldesign/model"
)

// Hub serves one client: it owns the study config and at most one running search.
type Hub struct {
	conn *websocket.Conn
	cfg  calculator.Config
	// request
	msg chan model.Msg
	// response, written by handleResponse only
	reply chan model.Msg
	done  chan struct{}

	mu      sync.Mutex
	cancel  context.CancelFunc
	running sync.WaitGroup
}

func NewHub(conn *websocket.Conn, cfg calculator.Config) *Hub {
	cfg.Absorptivities = cloneFloats(cfg.Absorptivities)
	return &Hub{
		conn:  conn,
		cfg:   cfg,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
		done:  make(chan struct{}),
	}
}

func (h *Hub) handleResponse() {
	defer close(h.done)
	for reply := range h.reply {
		if err := h.conn.WriteJSON(&reply); err != nil {
			log.WithError(err).WithField("type", reply.Type).Warn("write to client failed")
		}
	}
}

func (h *Hub) handleRequest() {
	for msg := range h.msg {
		switch msg.Type {
		case model.MsgEnv:
			h.setEnv(msg.Content)
		case model.MsgStart:
			h.start()
		case model.MsgStop:
			h.stop()
			h.reply <- model.Msg{Type: model.MsgStopped, Content: "stopped"}
		default:
			log.WithField("type", msg.Type).Warn("no such type")
			h.reply <- model.Msg{Type: model.MsgError, Content: "no such type: " + msg.Type}
		}
	}
	h.stop()
	close(h.reply)
}

// setEnv overlays the JSON content on the current config.
func (h *Hub) setEnv(content string) {
	cfg := h.cfg
	// json decodes into the existing backing array
	cfg.Absorptivities = cloneFloats(h.cfg.Absorptivities)
	if err := json.Unmarshal([]byte(content), &cfg); err != nil {
		h.replyError(err)
		return
	}
	// clients do not get to name files on this host
	cfg.MaterialFile = h.cfg.MaterialFile
	if _, err := cfg.Request(); err != nil {
		h.replyError(err)
		return
	}
	h.cfg = cfg
	log.WithFields(log.Fields{
		"shape":     cfg.Shape,
		"materials": len(cfg.Absorptivities),
		"target":    cfg.Target,
	}).Info("env set")
	h.reply <- model.Msg{Type: model.MsgEnvSet, Content: "env is set"}
}

func (h *Hub) start() {
	req, err := h.cfg.Request()
	if err != nil {
		h.replyError(err)
		return
	}
	h.mu.Lock()
	if h.cancel != nil {
		h.mu.Unlock()
		h.replyError(errors.New("a search is already running"))
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	h.mu.Unlock()

	h.reply <- model.Msg{Type: model.MsgStarted}
	h.running.Add(1)
	go h.run(ctx, req, h.cfg.Workers)
}

// stop cancels the running search and waits for it to return.
func (h *Hub) stop() {
	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
	}
	h.mu.Unlock()
	h.running.Wait()
}

func (h *Hub) run(ctx context.Context, req calculator.Request, workers int) {
	defer h.running.Done()

	calc := calculator.NewCalcHub(16)
	finished := make(chan struct{})
	forwarded := make(chan struct{})
	go func() {
		defer close(forwarded)
		for {
			select {
			case p := <-calc.Progress:
				h.send(model.MsgProgress, p)
			case <-finished:
				return
			}
		}
	}()

	res, err := calculator.NewSearch(workers).WithHub(calc).Run(ctx, req)
	close(finished)
	<-forwarded

	h.mu.Lock()
	h.cancel()
	h.cancel = nil
	h.mu.Unlock()

	switch {
	case errors.Is(err, context.Canceled):
		log.Info("search stopped by client")
	case err != nil:
		h.replyError(err)
	default:
		h.send(model.MsgResult, res.Data())
	}
}

func (h *Hub) send(msgType string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		h.replyError(err)
		return
	}
	h.reply <- model.Msg{Type: msgType, Content: string(data)}
}

func (h *Hub) replyError(err error) {
	log.WithError(err).Warn("request failed")
	h.reply <- model.Msg{Type: model.MsgError, Content: err.Error()}
}

func cloneFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	return append([]float64(nil), v...)
}
