// Package updatecheck polls the CurseForge file list for a plugin and tells
// permitted players when a newer release is published.
package updatecheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PluginKit_Go/internal/chatcolor"
	"github.com/osse101/PluginKit_Go/internal/domain"
	"github.com/osse101/PluginKit_Go/internal/event"
	"github.com/osse101/PluginKit_Go/internal/metrics"
	"github.com/osse101/PluginKit_Go/internal/scheduler"
	"github.com/osse101/PluginKit_Go/internal/utils"
	"github.com/osse101/PluginKit_Go/internal/worker"
)

// Options configures a Checker
type Options struct {
	PluginName     string `validate:"required,max=64"`
	ProjectID      string `validate:"omitempty,numeric"`
	BukkitDevSlug  string `validate:"required,max=64,excludesall=/?# "`
	CurrentVersion string `validate:"max=64"`
	Enabled        bool
	// APIBaseURL replaces https://api.curseforge.com, mainly for tests
	APIBaseURL string       `validate:"omitempty,url"`
	HTTPClient *http.Client `validate:"-"`
	// Permission defaults to "<slug>.config"
	Permission string `validate:"max=128"`
	// Messages defaults to DefaultMessages
	Messages []string `validate:"dive,max=256"`
	// Period between scheduled checks; defaults to one hour of ticks
	Period    time.Duration   `validate:"gte=0"`
	Publisher event.Publisher `validate:"-"`
	Logger    *slog.Logger    `validate:"-"`
}

// Status is a point-in-time view of the checker
type Status struct {
	Plugin         string    `json:"plugin"`
	Enabled        bool      `json:"enabled"`
	CurrentVersion string    `json:"current_version"`
	LastVersion    string    `json:"last_version,omitempty"`
	UpdateRequired bool      `json:"update_required"`
	URL            string    `json:"url"`
	Permission     string    `json:"permission"`
	LastChecked    time.Time `json:"last_checked,omitempty"`
	LastError      string    `json:"last_error,omitempty"`
}

// file is one entry of the servermods file list
type file struct {
	Name string `json:"name"`
}

// Checker tracks the newest published version of one plugin.
// It is safe for concurrent use.
type Checker struct {
	pluginName string
	projectID  string
	apiURL     string
	infoURL    string
	current    string
	enabled    bool
	period     time.Duration
	client     *http.Client
	publisher  event.Publisher
	log        *slog.Logger

	mu          sync.RWMutex
	permission  string
	messages    []string
	last        string
	lastChecked time.Time
	lastErr     string
}

var validate = validator.New()

// New builds a checker. It does not contact the API; call Start or CheckNow.
func New(opts Options) (*Checker, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidOptions, domain.ErrInvalidConfig, err)
	}

	base := strings.TrimRight(opts.APIBaseURL, "/")
	if base == "" {
		base = DefaultAPIBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	period := opts.Period
	if period == 0 {
		period = scheduler.Ticks(DefaultPeriodTicks)
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	c := &Checker{
		pluginName: opts.PluginName,
		projectID:  opts.ProjectID,
		apiURL:     fmt.Sprintf(APIPathFormat, base, opts.ProjectID),
		infoURL:    fmt.Sprintf(InfoURLFormat, opts.BukkitDevSlug),
		current:    opts.CurrentVersion,
		enabled:    opts.Enabled && opts.ProjectID != "",
		period:     period,
		client:     client,
		publisher:  opts.Publisher,
		log:        log.With("plugin", opts.PluginName),
		permission: opts.Permission,
	}
	if c.permission == "" {
		c.permission = opts.BukkitDevSlug + PermissionSuffix
	}
	c.SetUpdateMessage(opts.Messages...)
	return c, nil
}

// Start runs one check right away and then every period, after an initial
// delay of 40 to 59 ticks, until ctx is cancelled or the scheduler stops.
// A disabled checker returns domain.ErrUpdateCheckDisabled.
func (c *Checker) Start(ctx context.Context, sched *scheduler.Scheduler) error {
	if !c.enabled {
		c.log.Info(LogMsgCheckerDisabled)
		return domain.ErrUpdateCheckDisabled
	}

	job := worker.JobFunc(c.scheduledCheck)
	if !sched.RunAsync(job) {
		c.log.Warn(LogMsgEnqueueRejected)
	}

	delay := scheduler.Ticks(InitialDelayMinTicks + utils.RandomInt(0, InitialDelaySpread-1))
	id := sched.ScheduleAfter(delay, c.period, job)
	c.log.Info(LogMsgCheckerStarted, "initial_delay", delay, "period", c.period)

	go func() {
		<-ctx.Done()
		sched.Cancel(id)
		c.log.Debug(LogMsgPeriodicStopped)
	}()
	return nil
}

// scheduledCheck runs CheckNow for the scheduler. Failures are already
// logged and counted, so they stop here.
func (c *Checker) scheduledCheck(ctx context.Context) error {
	_ = c.CheckNow(ctx)
	return nil
}

// CheckNow fetches the file list once and stores the newest version name.
// An empty list leaves the stored version alone. On failure the stored
// version is unchanged and the error is returned.
func (c *Checker) CheckNow(ctx context.Context) error {
	if !c.enabled {
		return domain.ErrUpdateCheckDisabled
	}

	latest, found, err := c.fetchLatest(ctx)
	c.mu.Lock()
	c.lastChecked = time.Now()
	if err != nil {
		c.lastErr = err.Error()
	} else {
		c.lastErr = ""
		if found {
			c.last = latest
		}
	}
	last := c.last
	c.mu.Unlock()

	if err != nil {
		c.log.Warn(LogMsgCheckFailed, "url", c.apiURL, "error", err)
		metrics.UpdateChecks.WithLabelValues(resultError).Inc()
		return err
	}
	if !found {
		c.log.Debug(LogMsgUnusableResponse, "url", c.apiURL)
		metrics.UpdateChecks.WithLabelValues(resultEmpty).Inc()
		return nil
	}

	required := c.IsUpdateRequired()
	if required {
		c.log.Info(fmt.Sprintf(LogMsgOutdated, c.pluginName, c.current, last))
		c.log.Info(LogMsgDownloadURL, "url", c.infoURL)
		metrics.UpdateChecks.WithLabelValues(resultUpdateAvailable).Inc()
		metrics.UpdateAvailable.Set(1)
	} else {
		c.log.Debug(LogMsgCheckCompleted, "current", c.current, "last", last)
		metrics.UpdateChecks.WithLabelValues(resultUpToDate).Inc()
		metrics.UpdateAvailable.Set(0)
	}

	if c.publisher != nil {
		evt := event.NewUpdateCheckedEvent(c.pluginName, c.current, last, required)
		if err := c.publisher.Publish(ctx, evt); err != nil {
			c.log.Warn(LogMsgPublishFailed, "error", err)
		}
	}
	return nil
}

func (c *Checker) fetchLatest(ctx context.Context) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return "", false, fmt.Errorf(ErrMsgBuildRequest, domain.ErrUpdateCheckFailed, err)
	}
	req.Header.Set(HeaderUserAgent, fmt.Sprintf(UserAgentFormat, c.pluginName))

	resp, err := c.client.Do(req)
	if err != nil {
		return "", false, fmt.Errorf(ErrMsgRequestFailed, domain.ErrUpdateCheckFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf(ErrMsgUnexpectedStatus, domain.ErrUpdateCheckFailed, resp.StatusCode)
	}

	var files []file
	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxResponseBytes)).Decode(&files); err != nil {
		return "", false, fmt.Errorf(ErrMsgDecodeResponse, domain.ErrUpdateCheckFailed, err)
	}
	if len(files) == 0 {
		return "", false, nil
	}

	name := files[len(files)-1].Name
	if name == "" {
		return "", false, fmt.Errorf(ErrMsgMissingName, domain.ErrUpdateCheckFailed)
	}
	return strings.TrimSpace(strings.ReplaceAll(name, c.pluginName+" v", "")), true, nil
}

// IsUpdateRequired reports whether the last fetched version is newer than
// the running one.
func (c *Checker) IsUpdateRequired() bool {
	if !c.enabled || c.projectID == "" {
		return false
	}
	c.mu.RLock()
	last := c.last
	c.mu.RUnlock()
	return newerThan(last, c.current)
}

// Enabled reports whether the checker contacts the API at all
func (c *Checker) Enabled() bool { return c.enabled }

// CurrentVersion returns the running version
func (c *Checker) CurrentVersion() string { return c.current }

// LastVersion returns the newest published version, or "" before the first
// successful check.
func (c *Checker) LastVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}

// URL returns the plugin's download page
func (c *Checker) URL() string { return c.infoURL }

// Status returns a snapshot for display
func (c *Checker) Status() Status {
	c.mu.RLock()
	s := Status{
		Plugin:         c.pluginName,
		Enabled:        c.enabled,
		CurrentVersion: c.current,
		LastVersion:    c.last,
		URL:            c.infoURL,
		Permission:     c.permission,
		LastChecked:    c.lastChecked,
		LastError:      c.lastErr,
	}
	c.mu.RUnlock()
	s.UpdateRequired = c.IsUpdateRequired()
	return s
}

// SetPermission changes who is told about updates
func (c *Checker) SetPermission(permission string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.permission = permission
}

// Permission returns the permission a player needs to be notified
func (c *Checker) Permission() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.permission
}

// SetUpdateMessage replaces the notification lines. No lines restores the
// defaults. Lines may use %plugin%, %newversion%, %oldversion% and %url%.
func (c *Checker) SetUpdateMessage(lines ...string) {
	msgs := DefaultMessages
	if len(lines) > 0 {
		msgs = lines
	}
	copied := make([]string, len(msgs))
	copy(copied, msgs)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = copied
}

// Messages returns the configured notification lines
func (c *Checker) Messages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.messages))
	copy(out, c.messages)
	return out
}

// Notify sends the update message to the player if an update is out and the
// player holds the notify permission. It reports whether anything was sent.
func (c *Checker) Notify(p domain.Player) bool {
	if !c.IsUpdateRequired() {
		return false
	}

	c.mu.RLock()
	permission := c.permission
	messages := c.messages
	last := c.last
	c.mu.RUnlock()

	if !p.HasPermission(permission) {
		return false
	}

	replacer := strings.NewReplacer(
		PlaceholderPlugin, c.pluginName,
		PlaceholderNewVersion, last,
		PlaceholderOldVersion, c.current,
		PlaceholderURL, c.infoURL,
	)
	for _, line := range messages {
		p.SendMessage(chatcolor.TranslateDefault(replacer.Replace(line)))
	}
	return true
}
