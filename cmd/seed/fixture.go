package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Produccion-api/internal/domain/access"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// fixture datos de planta para desarrollo: secciones, actores, permisos y el libro de pedidos.
type fixture struct {
	Sections []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"sections"`
	Actors []struct {
		ID      string `yaml:"id"`
		Name    string `yaml:"name"`
		Role    string `yaml:"role"`
		Section string `yaml:"section"`
	} `yaml:"actors"`
	RolePermissions []struct {
		Role    string `yaml:"role"`
		Module  string `yaml:"module"`
		Action  string `yaml:"action"`
		Allowed bool   `yaml:"allowed"`
	} `yaml:"role_permissions"`
	SectionPermissions []struct {
		Section string `yaml:"section"`
		Module  string `yaml:"module"`
		Action  string `yaml:"action"`
	} `yaml:"section_permissions"`
	Customers []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"customers"`
	Orders []struct {
		ID       string `yaml:"id"`
		Customer string `yaml:"customer"`
		Date     string `yaml:"date"` // 2006-01-02
		Status   string `yaml:"status"`
	} `yaml:"orders"`
	JobOrders []struct {
		ID                string          `yaml:"id"`
		Order             string          `yaml:"order"`
		Quantity          decimal.Decimal `yaml:"quantity"`
		CustomerProductID string          `yaml:"customer_product_id"`
	} `yaml:"job_orders"`
}

// parseFixture decodifica y valida el YAML. Rechaza campos desconocidos.
func parseFixture(r io.Reader) (*fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decodificar fixture: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *fixture) validate() error {
	sections := make(map[string]bool, len(f.Sections))
	for _, s := range f.Sections {
		if _, ok := access.SectionStage(s.Name); !ok {
			return fmt.Errorf("sección %s: nombre %q no corresponde a ninguna etapa", s.ID, s.Name)
		}
		sections[s.ID] = true
	}
	for _, a := range f.Actors {
		switch a.Role {
		case entity.RoleAdministrator, entity.RoleSupervisor, entity.RoleOperator:
		default:
			return fmt.Errorf("actor %s: rol desconocido %q", a.ID, a.Role)
		}
		if a.Section != "" && !sections[a.Section] {
			return fmt.Errorf("actor %s: sección %s no definida", a.ID, a.Section)
		}
	}
	orders := make(map[string]bool, len(f.Orders))
	for _, o := range f.Orders {
		orders[o.ID] = true
	}
	for _, j := range f.JobOrders {
		if !orders[j.Order] {
			return fmt.Errorf("orden de trabajo %s: pedido %s no definido", j.ID, j.Order)
		}
		if j.Quantity.IsNegative() {
			return fmt.Errorf("orden de trabajo %s: cantidad negativa", j.ID)
		}
	}
	return nil
}

// repos destino de la carga.
type repos struct {
	sections    repository.SectionRepository
	actors      repository.ActorRepository
	permissions repository.PermissionRepository
	customers   repository.CustomerRepository
	orders      repository.OrderRepository
	jobOrders   repository.JobOrderRepository
}

// load inserta el fixture en orden de dependencias.
func (f *fixture) load(ctx context.Context, r repos, now time.Time) error {
	for _, s := range f.Sections {
		if err := r.sections.Create(ctx, &entity.Section{ID: s.ID, Name: s.Name, CreatedAt: now}); err != nil {
			return err
		}
	}
	for _, a := range f.Actors {
		if err := r.actors.Create(ctx, &entity.Actor{ID: a.ID, Name: a.Name, Role: a.Role, SectionID: a.Section, CreatedAt: now}); err != nil {
			return err
		}
	}
	for _, p := range f.RolePermissions {
		if err := r.permissions.UpsertRolePermission(ctx, entity.RolePermission{Role: p.Role, Module: p.Module, Action: p.Action, Allowed: p.Allowed}); err != nil {
			return err
		}
	}
	for _, p := range f.SectionPermissions {
		if err := r.permissions.AddSectionPermission(ctx, entity.SectionPermission{SectionID: p.Section, Module: p.Module, Action: p.Action}); err != nil {
			return err
		}
	}
	for _, c := range f.Customers {
		if err := r.customers.Create(ctx, &entity.Customer{ID: c.ID, Name: c.Name, CreatedAt: now}); err != nil {
			return err
		}
	}
	for _, o := range f.Orders {
		date := now
		if o.Date != "" {
			d, err := time.Parse("2006-01-02", o.Date)
			if err != nil {
				return fmt.Errorf("pedido %s: fecha %q: %w", o.ID, o.Date, err)
			}
			date = d
		}
		status := o.Status
		if status == "" {
			status = "open"
		}
		if err := r.orders.Create(ctx, &entity.Order{ID: o.ID, CustomerID: o.Customer, Date: date, Status: status, CreatedAt: now}); err != nil {
			return err
		}
	}
	for _, j := range f.JobOrders {
		jo := &entity.JobOrder{
			ID:                j.ID,
			OrderID:           j.Order,
			Quantity:          j.Quantity,
			CustomerProductID: j.CustomerProductID,
			Status:            "pending",
			CreatedAt:         now,
		}
		if err := r.jobOrders.Create(ctx, jo); err != nil {
			return err
		}
	}
	return nil
}
