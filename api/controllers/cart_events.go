package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/naturesnacks/snackstore/internal/cart"
	"github.com/naturesnacks/snackstore/pkg/logger"
)

const cartEventsHeartbeat = 25 * time.Second

// CartEvents streams the cart snapshot as server-sent events: the current state first,
// then one event per mutation. Slow readers only ever see the latest snapshot and a
// snapshot older than one already sent is skipped.
func CartEvents(carts CartProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionCart(w, r, carts, logg)
		if !ok {
			return
		}
		rc := http.NewResponseController(w)

		updates := make(chan cart.Snapshot, 1)
		unsubscribe := store.Subscribe(func(s cart.Snapshot) {
			select {
			case updates <- s:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
			select {
			case updates <- s:
			default:
			}
		})
		defer unsubscribe()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		ctx := r.Context()
		current := store.Snapshot()
		if err := writeCartEvent(w, rc, current); err != nil {
			if logg != nil {
				logg.WarnErr(ctx, "cart events write failed", err)
			}
			return
		}
		sent := current.Version

		heartbeat := time.NewTicker(cartEventsHeartbeat)
		defer heartbeat.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case snap := <-updates:
				if snap.Version <= sent {
					continue
				}
				if err := writeCartEvent(w, rc, snap); err != nil {
					if logg != nil {
						logg.WarnErr(ctx, "cart events write failed", err)
					}
					return
				}
				sent = snap.Version
			case <-heartbeat.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				if err := rc.Flush(); err != nil {
					return
				}
			}
		}
	}
}

func writeCartEvent(w http.ResponseWriter, rc *http.ResponseController, snap cart.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: cart\ndata: %s\n\n", payload); err != nil {
		return err
	}
	return rc.Flush()
}
