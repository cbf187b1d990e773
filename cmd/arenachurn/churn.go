package main

import (
	"context"
	"log/slog"

	"github.com/zeebo/errs/v2"
	"github.com/zeebo/mwc"

	"github.com/pavanmanishd/genarena"
)

// staleWindow is how many removed handles are kept around for rechecking.
const staleWindow = 1024

type entity struct {
	ID   uint64
	X, Y float32
	HP   int
}

type config struct {
	Ops  int
	Live int
	Seed uint64
}

func (c config) validate() error {
	if c.Ops < 0 {
		return errs.Errorf("invalid ops: %d < 0", c.Ops)
	}
	if c.Live <= 0 {
		return errs.Errorf("invalid live target: %d <= 0", c.Live)
	}
	return nil
}

type report struct {
	Inserts     int
	Removes     int
	Updates     int
	StaleChecks int
}

// churn runs cfg.Ops random inserts, removes and updates against a and
// fails as soon as a live handle returns the wrong entity or a removed
// handle validates again.
func churn(ctx context.Context, a *genarena.SafeArena[entity], cfg config, log *slog.Logger) (rep report, err error) {
	rng := mwc.New(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)

	var (
		live   = make([]genarena.Handle[entity], 0, cfg.Live)
		ids    = make([]uint64, 0, cfg.Live)
		stale  = make([]genarena.Handle[entity], 0, staleWindow)
		nextID uint64
	)

	for op := 0; op < cfg.Ops; op++ {
		if op%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return rep, errs.Wrap(err)
			}
			if op > 0 {
				log.Debug("churn: progress", "op", op, "live", len(live))
			}
		}

		switch r := rng.Uint32n(8); {
		case len(live) == 0 || (len(live) < cfg.Live && r < 4):
			nextID++
			h := a.Insert(entity{ID: nextID, HP: 100})
			if e, ok := a.Get(h); !ok || e.ID != nextID {
				return rep, errs.Errorf("insert %d: handle %v does not round-trip", nextID, h)
			}
			live = append(live, h)
			ids = append(ids, nextID)
			rep.Inserts++

		case r < 6:
			i := int(rng.Uint32n(uint32(len(live))))
			h, id := live[i], ids[i]
			e, ok := a.Take(h)
			if !ok || e.ID != id {
				return rep, errs.Errorf("remove %d: handle %v returned %+v (ok=%v)", id, h, e, ok)
			}
			if a.IsValid(h) || a.Remove(h) {
				return rep, errs.Errorf("remove %d: handle %v still valid", id, h)
			}

			last := len(live) - 1
			live[i], ids[i] = live[last], ids[last]
			live, ids = live[:last], ids[:last]

			if len(stale) < staleWindow {
				stale = append(stale, h)
			} else {
				stale[rng.Uint32n(staleWindow)] = h
			}
			rep.Removes++

		default:
			i := int(rng.Uint32n(uint32(len(live))))
			ok := a.Update(live[i], func(e *entity) {
				e.X += 1
				e.Y -= 1
				e.HP--
			})
			if !ok {
				return rep, errs.Errorf("update %d: handle %v invalid", ids[i], live[i])
			}
			rep.Updates++
		}

		if len(stale) > 0 {
			h := stale[rng.Uint32n(uint32(len(stale)))]
			if e, ok := a.Get(h); ok {
				return rep, errs.Errorf("stale handle %v validated against entity %d", h, e.ID)
			}
			rep.StaleChecks++
		}
	}

	if got := a.Len(); got != len(live) {
		return rep, errs.Errorf("arena holds %d values, expected %d", got, len(live))
	}
	return rep, nil
}
