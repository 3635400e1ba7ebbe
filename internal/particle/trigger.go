package particle

import (
	"log"
	"math/rand"

	"github.com/gonewx/digdown/pkg/events"
)

// Params carries per-trigger effect parameters. The router fills in the
// sampled catalog values; callers may pre-seed extra entries (e.g. the
// row width for a full-row burst) which are passed through untouched.
type Params map[string]float64

// Trigger is the fire-and-forget hook the terrain engine calls for
// decorative feedback. Implementations must not mutate world state.
type Trigger interface {
	TriggerEffect(key string, x, y float64, params Params)
}

// Router is the default Trigger: it validates the key against the
// catalog, samples the entry's ranges into concrete parameters and
// publishes an EffectTriggered event for whatever renderer listens.
type Router struct {
	catalog    *Catalog
	dispatcher *events.Dispatcher
	rng        *rand.Rand
}

// NewRouter builds a Router. rng may be nil, in which case range
// parameters collapse to their minimum (useful for deterministic tests).
func NewRouter(catalog *Catalog, dispatcher *events.Dispatcher, rng *rand.Rand) *Router {
	return &Router{
		catalog:    catalog,
		dispatcher: dispatcher,
		rng:        rng,
	}
}

// TriggerEffect implements Trigger.
func (r *Router) TriggerEffect(key string, x, y float64, params Params) {
	if r == nil {
		return
	}

	effect, ok := r.catalog.Effect(key)
	if !ok {
		log.Printf("[ParticleRouter] dropping trigger for unknown effect %q at (%.1f, %.1f)", key, x, y)
		return
	}

	merged := Params{
		"count":    effect.Count.Sample(r.rng),
		"speed":    effect.Speed.Sample(r.rng),
		"angle":    effect.Angle.Sample(r.rng),
		"duration": effect.Duration,
	}
	for name, value := range params {
		merged[name] = value
	}

	r.dispatcher.Publish(events.EffectTriggeredEvent{
		Key:    key,
		X:      x,
		Y:      y,
		Params: merged,
	})
}

// Nop is a Trigger that does nothing. Used when the caller runs the
// engine without any effect consumer.
type Nop struct{}

// TriggerEffect implements Trigger.
func (Nop) TriggerEffect(string, float64, float64, Params) {}

// TriggerCall records one TriggerEffect invocation.
type TriggerCall struct {
	Key    string
	X, Y   float64
	Params Params
}

// Recorder is a Trigger that stores every call, for tests asserting on
// what the engine emitted (and on what it must not emit).
type Recorder struct {
	Calls []TriggerCall
}

// TriggerEffect implements Trigger.
func (r *Recorder) TriggerEffect(key string, x, y float64, params Params) {
	r.Calls = append(r.Calls, TriggerCall{Key: key, X: x, Y: y, Params: params})
}

// CallsFor returns the recorded calls matching an effect key.
func (r *Recorder) CallsFor(key string) []TriggerCall {
	matched := make([]TriggerCall, 0)
	for _, call := range r.Calls {
		if call.Key == key {
			matched = append(matched, call)
		}
	}
	return matched
}

// Reset clears the recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
