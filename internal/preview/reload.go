package preview

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadPath is the WebSocket endpoint used by ReloadScript.
const ReloadPath = "/_gee/reload"

// MessageType is the kind of message sent to browsers.
type MessageType string

const (
	MessageReload MessageType = "reload"
	MessageError  MessageType = "error"
	MessageClear  MessageType = "clear"
)

// Message is sent to browsers via WebSocket.
type Message struct {
	Type  MessageType `json:"type"`
	Error string      `json:"error,omitempty"`
}

// Hub tracks reload clients and broadcasts messages to them.
type Hub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // local preview only
			},
		},
	}
}

// ServeHTTP upgrades the request and holds the connection until the client
// goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(conn)
}

// Reload tells every client to reload the page.
func (h *Hub) Reload() {
	h.broadcast(Message{Type: MessageReload})
}

// Error shows msg in the client error overlay.
func (h *Hub) Error(msg string) {
	h.broadcast(Message{Type: MessageError, Error: msg})
}

// Clear removes the client error overlay.
func (h *Hub) Clear() {
	h.broadcast(Message{Type: MessageClear})
}

func (h *Hub) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(c)
		}
	}
}

func (h *Hub) remove(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.Close()
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects all clients.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.Close()
		delete(h.clients, c)
	}
}

// ReloadScript connects to the hub and reacts to its messages. It is
// appended to the <head> of every served page.
const ReloadScript = `<script>
(function() {
    'use strict';

    var delay = 1000;

    function connect() {
        var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(proto + '//' + location.host + '` + ReloadPath + `');

        ws.onopen = function() {
            delay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }
            switch (msg.type) {
                case 'reload':
                    location.reload();
                    break;
                case 'error':
                    showError(msg.error);
                    break;
                case 'clear':
                    clearError();
                    break;
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                delay = Math.min(delay * 2, 30000);
                connect();
            }, delay);
        };
    }

    function showError(text) {
        clearError();
        var pre = document.createElement('pre');
        pre.id = 'gee-error-overlay';
        pre.style.cssText = 'position:fixed;inset:0;margin:0;padding:20px;background:rgba(0,0,0,0.9);color:#ff5555;font:14px monospace;white-space:pre-wrap;z-index:999999;';
        pre.textContent = text;
        document.body.appendChild(pre);
    }

    function clearError() {
        var el = document.getElementById('gee-error-overlay');
        if (el) {
            el.remove();
        }
    }

    connect();
})();
</script>
`
