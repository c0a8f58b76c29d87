package csvfile

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"parma-backoffice/internal/models"
	"parma-backoffice/internal/storage"
)

const clientsFile = "clientes.csv"

var clientColumns = []string{"ID", "Data", "Cliente", "Nome", "Cidade", "UF", "Telefone", "E-mail"}

// ClientRepo implements storage.ClientRepository on top of clientes.csv.
type ClientRepo struct {
	tableStore
}

// NewClientRepo creates a new ClientRepo rooted at the data directory.
func NewClientRepo(dataDir string) *ClientRepo {
	return &ClientRepo{tableStore{path: filepath.Join(dataDir, clientsFile), columns: clientColumns}}
}

// Compile-time check to ensure ClientRepo implements ClientRepository
var _ storage.ClientRepository = (*ClientRepo)(nil)

func clientFromRow(row map[string]string) models.Client {
	return models.Client{
		ID:      row["ID"],
		Date:    row["Data"],
		Company: row["Cliente"],
		Name:    row["Nome"],
		City:    row["Cidade"],
		State:   row["UF"],
		Phone:   row["Telefone"],
		Email:   row["E-mail"],
	}
}

func clientToRow(c *models.Client) map[string]string {
	return map[string]string{
		"ID":       c.ID,
		"Data":     c.Date,
		"Cliente":  c.Company,
		"Nome":     c.Name,
		"Cidade":   c.City,
		"UF":       c.State,
		"Telefone": c.Phone,
		"E-mail":   c.Email,
	}
}

// List returns every client in file order.
func (r *ClientRepo) List(ctx context.Context) ([]models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	clients := make([]models.Client, 0, len(t.Rows))
	for _, row := range t.Rows {
		clients = append(clients, clientFromRow(row))
	}
	return clients, nil
}

// GetByID retrieves a specific client by its ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	i := t.IndexByID(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	c := clientFromRow(t.Rows[i])
	return &c, nil
}

// Create saves a new client, assigning the next available ID.
func (r *ClientRepo) Create(ctx context.Context, client *models.Client) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	created := *client
	created.ID = strconv.Itoa(t.NextID())
	t.Rows = append(t.Rows, clientToRow(&created))
	if err := t.Save(r.path); err != nil {
		log.Printf("Error saving client %s: %v", created.ID, err)
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &created, nil
}

// Update replaces the stored row for the client's ID.
func (r *ClientRepo) Update(ctx context.Context, client *models.Client) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	i := t.IndexByID(client.ID)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	t.Rows[i] = clientToRow(client)
	if err := t.Save(r.path); err != nil {
		log.Printf("Error updating client %s: %v", client.ID, err)
		return nil, fmt.Errorf("failed to update client %s: %w", client.ID, err)
	}
	updated := *client
	return &updated, nil
}

// Delete removes a client row by its ID.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.load()
	i := t.IndexByID(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	t.Rows = append(t.Rows[:i], t.Rows[i+1:]...)
	if err := t.Save(r.path); err != nil {
		log.Printf("Error deleting client %s: %v", id, err)
		return fmt.Errorf("failed to delete client %s: %w", id, err)
	}
	return nil
}
