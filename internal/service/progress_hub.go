package service

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
	"web3_journey_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// reloadNotice 推给客户端的变更通知。客户端收到后整体重拉，不做增量合并。
type reloadNotice struct {
	Type  string `json:"type"` // reload
	Table string `json:"table"`
}

// ProgressHub 多端同步枢纽。订阅 redis 进度事件，先刷新本进程镜像，
// 再把 reload 通知推给该用户的所有 websocket 连接（其它标签页、其它设备）。
type ProgressHub struct {
	Progress *ProgressService
	rdb      *redis.Client

	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[uint]map[*websocket.Conn]bool
}

func NewProgressHub(progress *ProgressService, rdb *redis.Client) *ProgressHub {
	return &ProgressHub{
		Progress: progress,
		rdb:      rdb,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// 跨域校验由 CORS 中间件承担
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[uint]map[*websocket.Conn]bool),
	}
}

// Run 事件循环，随服务生命周期运行，ctx 取消后退出
func (h *ProgressHub) Run(ctx context.Context) {
	if h.rdb == nil {
		return
	}
	sub := h.rdb.Subscribe(ctx, ProgressEventChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event ProgressEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				logger.Log.Warn("malformed progress event", zap.String("payload", msg.Payload))
				continue
			}
			h.handleEvent(ctx, event)
		}
	}
}

func (h *ProgressHub) handleEvent(ctx context.Context, event ProgressEvent) {
	// 镜像整体重载，保证本实例与发起写入的实例一致
	if event.Table != "user_stats" {
		if err := h.Progress.LoadAll(ctx, event.UserID); err != nil {
			logger.Log.Warn("mirror reload after progress event failed",
				zap.Uint("userId", event.UserID), zap.Error(err))
		}
	}
	h.broadcast(event.UserID, reloadNotice{Type: "reload", Table: event.Table})
}

func (h *ProgressHub) broadcast(userID uint, notice reloadNotice) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients[userID]))
	for conn := range h.clients[userID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteJSON(notice); err != nil {
			h.unregister(userID, conn)
		}
	}
}

func (h *ProgressHub) register(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*websocket.Conn]bool)
	}
	h.clients[userID][conn] = true
}

func (h *ProgressHub) unregister(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.clients[userID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.clients, userID)
		}
	}
	conn.Close()
}

// Serve 升级连接并挂入用户的连接组。客户端不发业务消息，
// 读循环只用来感知断开和响应 ping。
func (h *ProgressHub) Serve(w http.ResponseWriter, r *http.Request, userID uint) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	h.register(userID, conn)

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(120 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(120 * time.Second))
		return nil
	})

	go func() {
		defer h.unregister(userID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			conn.SetReadDeadline(time.Now().Add(120 * time.Second))
		}
	}()

	go func() {
		ticker := time.NewTicker(50 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}()
	return nil
}
