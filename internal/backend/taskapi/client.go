// Package taskapi implements the service.Service interface against the
// task backend's REST endpoints.
package taskapi

import (
	"context"

	"taskcli/internal/api"
	"taskcli/internal/service"
)

// Client implements service.Service over /tasks.
type Client struct {
	api *api.Client
}

// New creates a backend client on top of the shared API client.
func New(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// taskDTO is the wire shape of a task. The backend names the identifier
// "_id", not "id".
type taskDTO struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// draftDTO is the outbound mutation body. The identifier is never part of
// it (it travels in the URL), and an unset due date is omitted entirely
// rather than sent as an empty string.
type draftDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate,omitempty"`
}

func fromDTO(d taskDTO) service.Task {
	status := d.Status
	if status == "" {
		status = service.StatusPending
	}
	return service.Task{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Status:      status,
		DueDate:     d.DueDate,
		CreatedAt:   d.CreatedAt,
	}
}

func toDTO(d service.Draft) draftDTO {
	status := d.Status
	if status == "" {
		status = service.StatusPending
	}
	return draftDTO{
		Title:       d.Title,
		Description: d.Description,
		Status:      status,
		DueDate:     d.DueDate,
	}
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var dtos []taskDTO
	if err := c.api.Get(ctx, "/tasks", &dtos); err != nil {
		return nil, err
	}
	tasks := make([]service.Task, 0, len(dtos))
	for _, d := range dtos {
		tasks = append(tasks, fromDTO(d))
	}
	return tasks, nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, draft service.Draft) (service.Task, error) {
	var created taskDTO
	if err := c.api.Post(ctx, "/tasks", toDTO(draft), &created); err != nil {
		return service.Task{}, err
	}
	return fromDTO(created), nil
}

// UpdateTask implements service.Service.
func (c *Client) UpdateTask(ctx context.Context, id string, draft service.Draft) (service.Task, error) {
	var updated taskDTO
	if err := c.api.Put(ctx, "/tasks/"+id, toDTO(draft), &updated); err != nil {
		return service.Task{}, err
	}
	return fromDTO(updated), nil
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	// The backend answers with an acknowledgement message; nothing in it
	// is needed beyond the status code.
	return c.api.Delete(ctx, "/tasks/"+id, nil)
}
