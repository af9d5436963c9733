package rpc

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"datachat/internal/charttool"
	"datachat/internal/dataset"
	"datachat/internal/llm"
	"datachat/internal/promptctx"
)

const (
	chatWSWriteWait = 10 * time.Second
	chatWSPongWait  = 60 * time.Second
	chatWSPingEvery = (chatWSPongWait * 9) / 10
)

var chatWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type chatWSInbound struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

type chatWSOutbound struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	HTML string `json:"html,omitempty"`
}

// ChatHandler serves the chat websocket: it grounds the conversation in a
// dataset named by query parameters and relays model turns, dispatching chart
// function calls as they come back.
type ChatHandler struct {
	Loader     *dataset.CachedLoader
	Model      llm.ChatModel
	Dispatcher *charttool.Dispatcher
	BasePrompt string
	MaxRows    int
}

func (h *ChatHandler) HandleChatWS(w http.ResponseWriter, r *http.Request) {
	if h.Model == nil {
		http.Error(w, "chat model is not configured", http.StatusServiceUnavailable)
		return
	}

	system, err := h.systemPrompt(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	conn, err := chatWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(chatWSPongWait)); err != nil {
		log.Printf("chat ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(chatWSPongWait))
	})

	writeCh := make(chan chatWSOutbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(chatWSPingEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case out, ok := <-writeCh:
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(chatWSWriteWait))
				if err := conn.WriteJSON(out); err != nil {
					cancel()
					return
				}
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(chatWSWriteWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					cancel()
					return
				}
			}
		}
	}()
	defer func() {
		close(writeCh)
		<-writerDone
	}()

	for {
		var in chatWSInbound
		if err := conn.ReadJSON(&in); err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(chatWSPongWait))
		if in.Type != "chat" || strings.TrimSpace(in.Message) == "" {
			continue
		}

		reply, err := h.Model.Chat(ctx, system, in.Message, h.Dispatcher.Specs())
		if err != nil {
			select {
			case writeCh <- chatWSOutbound{Type: "error", Text: err.Error()}:
			case <-ctx.Done():
				return
			}
			continue
		}

		out := chatWSOutbound{Type: "text", Text: reply.Text}
		if reply.Call != nil {
			payload := h.Dispatcher.Dispatch(ctx, *reply.Call)
			out = chatWSOutbound{Type: "chart", Text: payload.Text, HTML: payload.HTML}
		}
		select {
		case writeCh <- out:
		case <-ctx.Done():
			return
		}
	}
}

// systemPrompt loads the dataset named by the request's url/format query
// parameters and composes the chat system instruction around it. Without a
// url the base prompt is used alone.
func (h *ChatHandler) systemPrompt(r *http.Request) (string, error) {
	url := strings.TrimSpace(r.URL.Query().Get("url"))
	if url == "" || h.Loader == nil {
		return h.BasePrompt, nil
	}
	format := dataset.Format(strings.TrimSpace(r.URL.Query().Get("format")))
	ds, err := h.Loader.Load(r.Context(), url, format)
	if err != nil {
		return "", err
	}
	maxRows := h.MaxRows
	if maxRows <= 0 {
		maxRows = promptctx.DefaultMaxRows
	}
	return promptctx.ComposePrompt(ds, h.BasePrompt, maxRows), nil
}
