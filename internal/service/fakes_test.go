package service

import (
	"context"
	"sort"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/adapter/repository"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/client"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/product"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// Repositórios em memória para os testes de serviço, com a mesma
// semântica dos repositórios Postgres: sentinelas de não-encontrado,
// baixa de estoque atômica na criação da venda e devolução no
// cancelamento.

type fakeClientRepo struct {
	nextID  int64
	clients map[int64]client.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{nextID: 1, clients: make(map[int64]client.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, c *client.Client) error {
	c.ID = r.nextID
	r.nextID++
	r.clients[c.ID] = *c
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id int64) (*client.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, repository.ErrClientNotFound
	}
	return &c, nil
}

func (r *fakeClientRepo) List(_ context.Context, limit, offset int) ([]*client.Client, error) {
	all := make([]*client.Client, 0, len(r.clients))
	for id := range r.clients {
		c := r.clients[id]
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, limit, offset), nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *client.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return repository.ErrClientNotFound
	}
	r.clients[c.ID] = *c
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.clients[id]; !ok {
		return repository.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) Count(_ context.Context) (int, error) {
	return len(r.clients), nil
}

type fakeProductRepo struct {
	nextID   int64
	products map[int64]product.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1, products: make(map[int64]product.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *product.Product) error {
	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id int64) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*product.Product, error) {
	all := make([]*product.Product, 0, len(r.products))
	for id := range r.products {
		p := r.products[id]
		all = append(all, &p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, limit, offset), nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *product.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return repository.ErrProductNotFound
	}
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Count(_ context.Context) (int, error) {
	return len(r.products), nil
}

func (r *fakeProductRepo) AdjustStock(_ context.Context, id int64, delta int) error {
	p, ok := r.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	if p.Quantity+delta < 0 {
		return product.ErrInsufficientStock
	}
	p.Quantity += delta
	r.products[id] = p
	return nil
}

type fakeSaleRepo struct {
	nextID   int64
	sales    map[int64]sale.Sale
	clients  *fakeClientRepo
	products *fakeProductRepo
}

func newFakeSaleRepo(clients *fakeClientRepo, products *fakeProductRepo) *fakeSaleRepo {
	return &fakeSaleRepo{
		nextID:   1,
		sales:    make(map[int64]sale.Sale),
		clients:  clients,
		products: products,
	}
}

func (r *fakeSaleRepo) Create(ctx context.Context, s *sale.Sale) error {
	if err := r.products.AdjustStock(ctx, s.ProductID, -s.Quantity); err != nil {
		return err
	}
	s.ID = r.nextID
	r.nextID++
	r.sales[s.ID] = *s
	return nil
}

func (r *fakeSaleRepo) FindByID(_ context.Context, id int64) (*sale.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, repository.ErrSaleNotFound
	}
	return &s, nil
}

func (r *fakeSaleRepo) ListDetailed(ctx context.Context, f sale.Filter) ([]*sale.DetailedSale, error) {
	out := make([]*sale.DetailedSale, 0, len(r.sales))
	for id := range r.sales {
		s := r.sales[id]
		if f.Start != nil && s.SoldAt.Before(*f.Start) {
			continue
		}
		if f.End != nil && s.SoldAt.After(*f.End) {
			continue
		}
		d := &sale.DetailedSale{Sale: s, ClientName: "Cliente não encontrado", ProductName: "Produto não encontrado"}
		if c, err := r.clients.FindByID(ctx, s.ClientID); err == nil {
			d.ClientName = c.Name
		}
		if p, err := r.products.FindByID(ctx, s.ProductID); err == nil {
			d.ProductName = p.Name
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeSaleRepo) Cancel(ctx context.Context, s *sale.Sale) error {
	stored, ok := r.sales[s.ID]
	if !ok {
		return repository.ErrSaleNotFound
	}
	if stored.Status == sale.StatusCancelled {
		return sale.ErrAlreadyCancelled
	}
	if err := r.products.AdjustStock(ctx, stored.ProductID, stored.Quantity); err != nil {
		return err
	}
	stored.Status = sale.StatusCancelled
	r.sales[s.ID] = stored
	return nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.sales[id]; !ok {
		return repository.ErrSaleNotFound
	}
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepo) HasActiveByClient(_ context.Context, clientID int64) (bool, error) {
	for _, s := range r.sales {
		if s.ClientID == clientID && s.Status == sale.StatusActive {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSaleRepo) HasActiveByProduct(_ context.Context, productID int64) (bool, error) {
	for _, s := range r.sales {
		if s.ProductID == productID && s.Status == sale.StatusActive {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSaleRepo) Count(_ context.Context) (int, error) {
	return len(r.sales), nil
}

func (r *fakeSaleRepo) Revenue(_ context.Context, f sale.Filter) (*sale.RevenueSummary, error) {
	summary := &sale.RevenueSummary{Gross: decimal.Zero, Active: decimal.Zero}
	for _, s := range r.sales {
		if f.Start != nil && s.SoldAt.Before(*f.Start) {
			continue
		}
		if f.End != nil && s.SoldAt.After(*f.End) {
			continue
		}
		summary.Gross = summary.Gross.Add(s.TotalValue)
		if s.Status == sale.StatusActive {
			summary.Active = summary.Active.Add(s.TotalValue)
		}
		summary.Count++
	}
	return summary, nil
}

func paginate[T any](all []*T, limit, offset int) []*T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
