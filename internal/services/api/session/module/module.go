// Package module wires review sessions into the API
package module

import (
	"fmt"
	"sync"

	"promptcorrector/internal/core/review"
	"promptcorrector/internal/core/tagger"
	"promptcorrector/internal/modkit"
	"promptcorrector/internal/modkit/httpkit"
	"promptcorrector/internal/services/api/session/domain"
	sessionhttp "promptcorrector/internal/services/api/session/http"
	sessionsvc "promptcorrector/internal/services/api/session/service"
)

// Deps are the cross module ports a session module needs, injected with modkit.WithPorts
type Deps struct {
	Records sessionsvc.Records
}

// Ports exposed by the session module
type Ports struct {
	Sessions domain.ServicePort
}

// Module runs review sessions under /sessions
type Module struct {
	b     modkit.Built
	svc   *sessionsvc.Svc
	ports Ports
}

var tagsOnce sync.Once

// registerTags adds the review_action and emotion validation tags used by the DTOs
func registerTags() {
	tagsOnce.Do(func() {
		must(httpkit.RegisterTag("review_action", func(fl httpkit.FieldLevel) bool {
			_, err := review.ParseAction(fl.Field().String())
			return err == nil
		}, "{0} must be one of approve, edit or reject"))
		must(httpkit.RegisterTag("emotion", func(fl httpkit.FieldLevel) bool {
			return review.ValidEmotion(fl.Field().String())
		}, "{0} must be one of Happy, Sad, Angry, Neutral, Surprised, Fearful or Disgusted"))
	})
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// New loads the tagger, registers the DTO validation tags and starts the
// session service. It panics unless modkit.WithPorts(Deps{...}) carries a records port
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Named("sessions", "/sessions", opts...)
	in := modkit.RequirePorts[Deps](b)
	if in.Records == nil {
		panic("session module requires a records port")
	}

	o := FromConfig(deps.Cfg)
	tg, err := tagger.Default(o.FallbackTag)
	if err != nil {
		panic(fmt.Sprintf("session module: load tagger: %v", err))
	}
	registerTags()

	svc := sessionsvc.New(in.Records, tg, sessionsvc.Config{
		SessionTTL: o.SessionTTL,
		Cleanup:    o.Cleanup,
	}, deps.Metrics)
	return &Module{b: b, svc: svc, ports: Ports{Sessions: svc}}
}

func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { sessionhttp.Register(rr, m.svc) })
}

func (m *Module) Name() string   { return m.b.Name }
func (m *Module) Prefix() string { return m.b.Prefix }
func (m *Module) Ports() any     { return m.ports }
