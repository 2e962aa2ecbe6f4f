package auth

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Throttle consultivo de login: contadores por e-mail+IP no Redis para
// valerem entre instâncias. Não é controle de segurança — o bcrypt
// continua sendo a barreira real.
const (
	maxFailedAttempts = 5
	attemptWindow     = 15 * time.Minute
)

type Throttle struct {
	rdb *redis.Client
}

func NewThrottle(rdb *redis.Client) *Throttle {
	return &Throttle{rdb: rdb}
}

func attemptKey(email, ip string) string {
	return fmt.Sprintf("auth:attempts:%s:%s", email, ip)
}

// Blocked informa se o par e-mail+IP estourou a janela. Redis fora do ar
// nunca bloqueia login.
func (t *Throttle) Blocked(ctx context.Context, email, ip string) bool {
	if t.rdb == nil {
		return false
	}

	count, err := t.rdb.Get(ctx, attemptKey(email, ip)).Int()
	if err != nil {
		if err != redis.Nil {
			log.Println("auth throttle read error:", err)
		}
		return false
	}

	return count >= maxFailedAttempts
}

// RegisterFailure incrementa o contador e renova a janela.
func (t *Throttle) RegisterFailure(ctx context.Context, email, ip string) {
	if t.rdb == nil {
		return
	}

	key := attemptKey(email, ip)
	if err := t.rdb.Incr(ctx, key).Err(); err != nil {
		log.Println("auth throttle incr error:", err)
		return
	}
	t.rdb.Expire(ctx, key, attemptWindow)
}

// Reset limpa o contador após login bem-sucedido.
func (t *Throttle) Reset(ctx context.Context, email, ip string) {
	if t.rdb == nil {
		return
	}
	t.rdb.Del(ctx, attemptKey(email, ip))
}
