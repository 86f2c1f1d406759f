package petapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	pets "pawsitive/internal/domain/pets/model"
	"pawsitive/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("petapi: client not configured")
	ErrUnauthorized  = errors.New("petapi: unauthorized")
	ErrNotFound      = errors.New("petapi: not found")
	ErrConflict      = errors.New("petapi: conflict")
	ErrUpstream      = errors.New("petapi: upstream error")
)

// Config del cliente contra la API remota de mascotas/cuentas.
// BaseURL, APIKey y BearerToken vienen de env vars en el servicio.
type Config struct {
	BaseURL     string
	APIKey      string
	BearerToken string

	// Nombre del header de la API key. Vacío => "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration

	// Transport opcional (tests).
	Transport http.RoundTripper
}

// Client habla con la API remota. No reintenta: un fetch fallido se
// reporta al caller tal cual, igual que hacía el front.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) *Client {
	header := strings.TrimSpace(cfg.APIKeyHeader)
	if header == "" {
		header = "X-Api-Key"
	}

	var hc *httpclient.Client
	if cfg.Transport != nil {
		hc = httpclient.NewWithTransport(cfg.Timeout, cfg.Transport)
		hc.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	} else {
		var err error
		hc, err = httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
		if err != nil {
			// BaseURL inválida => cliente sin base; cada llamada
			// devuelve ErrNotConfigured en vez de panickear acá.
			hc = httpclient.New(cfg.Timeout)
		}
	}

	headers := map[string]string{}
	if strings.TrimSpace(cfg.APIKey) != "" {
		headers[header] = strings.TrimSpace(cfg.APIKey)
	}
	if strings.TrimSpace(cfg.BearerToken) != "" {
		headers["Authorization"] = "Bearer " + strings.TrimSpace(cfg.BearerToken)
	}
	hc.DefaultHeaders = headers

	return &Client{http: hc}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

// Meta son los campos de paginación del envelope {data, meta}.
type Meta struct {
	IsFirstPage  bool `json:"isFirstPage"`
	IsLastPage   bool `json:"isLastPage"`
	CurrentPage  int  `json:"currentPage"`
	PreviousPage *int `json:"previousPage"`
	NextPage     *int `json:"nextPage"`
	PageCount    int  `json:"pageCount"`
	TotalCount   int  `json:"totalCount"`
}

// PetsPage es una página de resultados del listado remoto.
type PetsPage struct {
	Pets []pets.Pet
	Meta *Meta
}

// Account es el perfil que devuelve la API de cuentas al loguear/registrar.
// ShelterManager mapea al rol admin de este servicio.
type Account struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	ShelterManager bool   `json:"shelterManager"`
}

// PetInput es el cuerpo de alta/edición de mascota (admin).
type PetInput struct {
	Name           string      `json:"name"`
	Species        string      `json:"species"`
	Breed          string      `json:"breed"`
	Age            int         `json:"age"`
	Gender         string      `json:"gender"`
	Size           string      `json:"size"`
	Color          string      `json:"color"`
	Description    string      `json:"description"`
	AdoptionStatus string      `json:"adoptionStatus"`
	Location       string      `json:"location"`
	Image          *pets.Image `json:"image,omitempty"`
}

type petsEnvelope struct {
	Data []pets.Pet `json:"data"`
	Meta *Meta      `json:"meta"`
}

type petEnvelope struct {
	Data pets.Pet `json:"data"`
}

type accountEnvelope struct {
	Data Account `json:"data"`
}

func (c *Client) ListPets(ctx context.Context, page, limit int) (PetsPage, error) {
	if !c.IsConfigured() {
		return PetsPage{}, ErrNotConfigured
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 12
	}

	var out petsEnvelope
	path := "/pets?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	if err := c.http.DoJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return PetsPage{}, mapError(err)
	}
	return PetsPage{Pets: out.Data, Meta: out.Meta}, nil
}

func (c *Client) SearchPets(ctx context.Context, query string, page int) (PetsPage, error) {
	if !c.IsConfigured() {
		return PetsPage{}, ErrNotConfigured
	}
	if page <= 0 {
		page = 1
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("page", strconv.Itoa(page))

	var out petsEnvelope
	if err := c.http.DoJSON(ctx, http.MethodGet, "/pets?"+q.Encode(), nil, nil, &out); err != nil {
		return PetsPage{}, mapError(err)
	}
	return PetsPage{Pets: out.Data, Meta: out.Meta}, nil
}

func (c *Client) GetPet(ctx context.Context, id string) (pets.Pet, error) {
	if !c.IsConfigured() {
		return pets.Pet{}, ErrNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	var out petEnvelope
	if err := c.http.DoJSON(ctx, http.MethodGet, "/pets/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return pets.Pet{}, mapError(err)
	}
	return out.Data, nil
}

func (c *Client) CreatePet(ctx context.Context, in PetInput) (pets.Pet, error) {
	if !c.IsConfigured() {
		return pets.Pet{}, ErrNotConfigured
	}

	var out petEnvelope
	if err := c.http.DoJSON(ctx, http.MethodPost, "/pets", nil, in, &out); err != nil {
		return pets.Pet{}, mapError(err)
	}
	return out.Data, nil
}

func (c *Client) UpdatePet(ctx context.Context, id string, in PetInput) (pets.Pet, error) {
	if !c.IsConfigured() {
		return pets.Pet{}, ErrNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	var out petEnvelope
	if err := c.http.DoJSON(ctx, http.MethodPut, "/pets/"+url.PathEscape(id), nil, in, &out); err != nil {
		return pets.Pet{}, mapError(err)
	}
	return out.Data, nil
}

func (c *Client) DeletePet(ctx context.Context, id string) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}

	if err := c.http.DoJSON(ctx, http.MethodDelete, "/pets/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return mapError(err)
	}
	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (Account, error) {
	if !c.IsConfigured() {
		return Account{}, ErrNotConfigured
	}

	in := map[string]string{"email": email, "password": password}

	var out accountEnvelope
	if err := c.http.DoJSON(ctx, http.MethodPost, "/auth/login", nil, in, &out); err != nil {
		return Account{}, mapError(err)
	}
	if strings.TrimSpace(out.Data.Name) == "" {
		return Account{}, fmt.Errorf("%w: login response missing account", ErrUpstream)
	}
	return out.Data, nil
}

type RegisterInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	ShelterManager bool   `json:"shelterManager"`
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (Account, error) {
	if !c.IsConfigured() {
		return Account{}, ErrNotConfigured
	}

	var out accountEnvelope
	if err := c.http.DoJSON(ctx, http.MethodPost, "/auth/register", nil, in, &out); err != nil {
		return Account{}, mapError(err)
	}
	if strings.TrimSpace(out.Data.Name) == "" {
		return Account{}, fmt.Errorf("%w: register response missing account", ErrUpstream)
	}
	return out.Data, nil
}

// mapError normaliza respuestas no-2xx a sentineles del adapter.
func mapError(err error) error {
	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		switch he.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrUnauthorized
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusConflict:
			return ErrConflict
		default:
			return fmt.Errorf("%w: status=%d", ErrUpstream, he.StatusCode)
		}
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
