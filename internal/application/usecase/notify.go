package usecase

import (
	"context"

	"github.com/jhoicas/epi-console/internal/application/ports"
	"github.com/jhoicas/epi-console/pkg/logger"
)

// Notify publica un aviso sin interrumpir la operación: un fallo del feed solo se registra.
func Notify(ctx context.Context, n ports.Notifier, log *logger.Logger, userID, kind, title, description string) {
	if n == nil {
		return
	}
	if err := n.Notify(ctx, userID, kind, title, description); err != nil && log != nil {
		log.Warn().Err(err).Str("user_id", userID).Str("title", title).Msg("no se pudo publicar la notificación")
	}
}
