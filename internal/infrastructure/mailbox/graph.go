package mailbox

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"lotmarket/internal/domain/entity"
	"lotmarket/pkg/contextx"
	"lotmarket/pkg/httpx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const messageFields = "id,subject,receivedDateTime,from,body,bodyPreview"

type GraphConfig struct {
	BaseURL  string
	PageSize int
	MaxPages int
	Timeout  time.Duration
}

// GraphClient читает входящие письма через message API пользователя.
type GraphClient struct {
	cfg  GraphConfig
	http *http.Client
}

// NewGraphClient собирает клиент поверх логирующего транспорта. refresher
// вызывается один раз, если API отверг переданный токен.
func NewGraphClient(cfg GraphConfig, refresher Refresher, opts ...httpx.Option) *GraphClient {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 50
	}

	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 1
	}

	transport := httpx.NewLoggingRoundTripper(http.DefaultTransport, opts...)

	return &GraphClient{
		cfg: cfg,
		http: &http.Client{
			Transport: httpx.NewAuthBearerRoundTripper(transport, bearer{refresher: refresher}),
			Timeout:   cfg.Timeout,
		},
	}
}

type graphPage struct {
	Value    []graphMessage `json:"value"`
	NextLink string         `json:"@odata.nextLink"`
}

type graphMessage struct {
	ID               string    `json:"id"`
	Subject          string    `json:"subject"`
	ReceivedDateTime time.Time `json:"receivedDateTime"`
	From             struct {
		EmailAddress struct {
			Name    string `json:"name"`
			Address string `json:"address"`
		} `json:"emailAddress"`
	} `json:"from"`
	Body struct {
		ContentType string `json:"contentType"`
		Content     string `json:"content"`
	} `json:"body"`
	BodyPreview string `json:"bodyPreview"`
}

func (m graphMessage) toDomain() entity.InboundMessage {
	msg := entity.InboundMessage{
		ID:          m.ID,
		Subject:     m.Subject,
		ReceivedAt:  m.ReceivedDateTime,
		Sender:      entity.Sender{Address: m.From.EmailAddress.Address, Name: m.From.EmailAddress.Name},
		TextPreview: m.BodyPreview,
	}

	if strings.EqualFold(m.Body.ContentType, "html") {
		msg.HTMLBody = m.Body.Content
	} else if m.Body.Content != "" {
		msg.TextPreview = m.Body.Content
	}

	return msg
}

// FetchMessages возвращает письма, тема которых содержит subjectFilter, от
// новых к старым.
func (c *GraphClient) FetchMessages(ctx context.Context, accessToken, subjectFilter string) ([]entity.InboundMessage, error) {
	ctx = withAccessToken(ctx, accessToken)

	next := c.firstPage(subjectFilter)

	var messages []entity.InboundMessage

	for page := 0; next != "" && page < c.cfg.MaxPages; page++ {
		p, err := c.page(ctx, next)
		if err != nil {
			return nil, err
		}

		for _, m := range p.Value {
			messages = append(messages, m.toDomain())
		}

		next = p.NextLink
	}

	logger(ctx).Debug("mailbox messages fetched",
		slog.String("filter", subjectFilter),
		slog.Int("count", len(messages)),
	)

	return messages, nil
}

func (c *GraphClient) firstPage(subjectFilter string) string {
	q := url.Values{}
	q.Set("$filter", fmt.Sprintf("contains(subject,'%s')", strings.ReplaceAll(subjectFilter, "'", "''")))
	q.Set("$orderby", "receivedDateTime desc")
	q.Set("$top", strconv.Itoa(c.cfg.PageSize))
	q.Set("$select", messageFields)

	return strings.TrimRight(c.cfg.BaseURL, "/") + "/me/messages?" + q.Encode()
}

func (c *GraphClient) page(ctx context.Context, link string) (graphPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, http.NoBody)
	if err != nil {
		return graphPage{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Prefer", `outlook.body-content-type="html"`)

	resp, err := c.http.Do(req)
	if err != nil {
		return graphPage{}, fmt.Errorf("http.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return graphPage{}, fmt.Errorf("mailbox responded %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var p graphPage
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(resp.Body).Decode(&p); err != nil {
		return graphPage{}, fmt.Errorf("decode messages: %w", err)
	}

	return p, nil
}
