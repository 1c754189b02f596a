package production

import (
	"sort"
	"strconv"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// JobOrderGroup rollos visibles de una orden de trabajo dentro de una vista.
type JobOrderGroup struct {
	JobOrder *entity.JobOrder
	Rolls    []*entity.Roll
}

// OrderGroup órdenes de trabajo visibles de un pedido.
type OrderGroup struct {
	OrderID        string
	CustomerID     string
	CustomerName   string
	JobOrderGroups []JobOrderGroup
}

// Index índices en memoria orden de trabajo → rollos y pedido → órdenes de trabajo.
// Lo usan tanto la cola por etapa como la vista de bodega para no recalcular distinto.
type Index struct {
	rollsByJobOrder map[string][]*entity.Roll
	jobOrders       map[string]*entity.JobOrder
	orders          map[string]*entity.Order
}

// BuildIndex arma el índice. Rollos cuya orden de trabajo no esté en jobOrders se ignoran.
func BuildIndex(rolls []*entity.Roll, jobOrders []*entity.JobOrder, orders []*entity.Order) *Index {
	idx := &Index{
		rollsByJobOrder: make(map[string][]*entity.Roll),
		jobOrders:       make(map[string]*entity.JobOrder, len(jobOrders)),
		orders:          make(map[string]*entity.Order, len(orders)),
	}
	for _, jo := range jobOrders {
		idx.jobOrders[jo.ID] = jo
	}
	for _, o := range orders {
		idx.orders[o.ID] = o
	}
	for _, r := range rolls {
		if _, ok := idx.jobOrders[r.JobOrderID]; !ok {
			continue
		}
		idx.rollsByJobOrder[r.JobOrderID] = append(idx.rollsByJobOrder[r.JobOrderID], r)
	}
	return idx
}

// GroupForStageView arma la cola de trabajo de una etapa.
//  1. particiona los rollos por orden de trabajo;
//  2. descarta la orden de trabajo si todos sus rollos están terminados para la etapa;
//  3. reagrupa por pedido;
//  4. ordena los pedidos por id ascendente;
//  5. en corte, los rollos ya completados no se listan (pero sí cuentan en el paso 2).
func GroupForStageView(stage entity.Stage, rolls []*entity.Roll, jobOrders []*entity.JobOrder, orders []*entity.Order) []OrderGroup {
	return BuildIndex(rolls, jobOrders, orders).StageView(stage)
}

// StageView ver GroupForStageView.
func (idx *Index) StageView(stage entity.Stage) []OrderGroup {
	return idx.group(func(rolls []*entity.Roll) ([]*entity.Roll, bool) {
		pending := false
		for _, r := range rolls {
			if !FinishedFor(r, stage) {
				pending = true
				break
			}
		}
		if !pending {
			return nil, false
		}
		if stage != entity.StageCutting {
			return rolls, true
		}
		visible := make([]*entity.Roll, 0, len(rolls))
		for _, r := range rolls {
			if r.Status != entity.RollStatusCompleted {
				visible = append(visible, r)
			}
		}
		return visible, true
	})
}

// WarehouseView órdenes de trabajo con al menos un rollo completado, listando solo esos rollos.
func (idx *Index) WarehouseView() []OrderGroup {
	return idx.group(func(rolls []*entity.Roll) ([]*entity.Roll, bool) {
		var done []*entity.Roll
		for _, r := range rolls {
			if r.CurrentStage == entity.StageCompleted {
				done = append(done, r)
			}
		}
		return done, len(done) > 0
	})
}

// group aplica keep a cada partición y reagrupa lo que sobrevive por pedido.
func (idx *Index) group(keep func([]*entity.Roll) ([]*entity.Roll, bool)) []OrderGroup {
	byOrder := make(map[string]*OrderGroup)
	for jobOrderID, rolls := range idx.rollsByJobOrder {
		visible, ok := keep(rolls)
		if !ok {
			continue
		}
		jo := idx.jobOrders[jobOrderID]
		sorted := append([]*entity.Roll(nil), visible...)
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].RollNumber != sorted[j].RollNumber {
				return sorted[i].RollNumber < sorted[j].RollNumber
			}
			return sorted[i].ID < sorted[j].ID
		})

		og, ok := byOrder[jo.OrderID]
		if !ok {
			og = &OrderGroup{OrderID: jo.OrderID}
			if o := idx.orders[jo.OrderID]; o != nil {
				og.CustomerID = o.CustomerID
				og.CustomerName = o.CustomerName
			}
			byOrder[jo.OrderID] = og
		}
		og.JobOrderGroups = append(og.JobOrderGroups, JobOrderGroup{JobOrder: jo, Rolls: sorted})
	}

	out := make([]OrderGroup, 0, len(byOrder))
	for _, og := range byOrder {
		sort.Slice(og.JobOrderGroups, func(i, j int) bool {
			return lessID(og.JobOrderGroups[i].JobOrder.ID, og.JobOrderGroups[j].JobOrder.ID)
		})
		out = append(out, *og)
	}
	sort.Slice(out, func(i, j int) bool { return lessID(out[i].OrderID, out[j].OrderID) })
	return out
}

// lessID orden numérico si ambos ids son enteros, lexicográfico en otro caso.
func lessID(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}
