// Package registry loads client organization profiles from an ini file.
// Each section is one client:
//
//	[acme-corp]
//	id = 1
//	name = Acme Corp
//	framework = NIST CSF
package registry

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

type Registry interface {
	GetClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id int) (domain.Client, error)
}

type clientRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &clientRegistry{cfg: cfg}, nil
}

func (r *clientRegistry) GetClients(_ context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		client, err := parseClient(section)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, nil
}

func (r *clientRegistry) GetClient(ctx context.Context, id int) (domain.Client, error) {
	clients, err := r.GetClients(ctx)
	if err != nil {
		return domain.Client{}, err
	}
	for _, c := range clients {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Client{}, domain.NotFound("client", fmt.Sprintf("%d", id))
}

func parseClient(section *ini.Section) (domain.Client, error) {
	id, err := section.Key("id").Int()
	if err != nil {
		return domain.Client{}, fmt.Errorf("client profile %q: invalid id: %w", section.Name(), err)
	}
	name := section.Key("name").String()
	if name == "" {
		name = section.Name()
	}
	return domain.Client{
		ID:        id,
		Name:      name,
		Framework: section.Key("framework").String(),
	}, nil
}
