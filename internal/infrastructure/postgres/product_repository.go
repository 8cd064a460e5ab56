package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, stock)
		VALUES ($1, $2)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, product.Name, product.Stock).Scan(&product.ID)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT id, name, stock FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista todos los productos en orden de inserción.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT id, name, stock FROM products ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Stock); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. Devuelve false si no existía.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Devuelve (nil, nil) si no existe. Solo tiene sentido dentro de una transacción.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT id, name, stock FROM products WHERE id = $1 FOR UPDATE`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return &p, nil
}

// DecrementStock resta quantity al stock. La cláusula stock >= quantity hace el
// decremento seguro incluso sin el bloqueo previo; cero filas afectadas
// significa stock insuficiente.
func (r *ProductRepo) DecrementStock(ctx context.Context, id int64, quantity int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock = stock - $2 WHERE id = $1 AND stock >= $2`,
		id, quantity,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.NewProductUnavailable(id, domain.ErrInsufficientStock)
		}
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewProductUnavailable(id, domain.ErrInsufficientStock)
	}
	return nil
}
