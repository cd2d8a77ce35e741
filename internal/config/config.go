package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Clockface"
	AppID             = "com.github.tartampluch.go-clockface"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagConfig       = "config"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescConfig   = "Path to an optional YAML configuration file"
	MsgVersionOutput = "%s version %s (commit %s, built %s) %s/%s\n"
)

// -----------------------------------------------------------------------------
// Clock Face Geometry
// -----------------------------------------------------------------------------

const (
	// DefaultRadius is the distance from the center to the tick dots, in scene units.
	DefaultRadius = 140.0
	MinRadius     = 20.0
	MaxRadius     = 1000.0

	// HourHandRatio shortens the hour hand relative to the face radius.
	HourHandRatio = 0.8

	// Hand stroke widths.
	SecondHandWidth = 2.0
	MinuteHandWidth = 3.0
	HourHandWidth   = 4.0

	// TickCount is the number of hour dots drawn around the edge.
	TickCount    = 12
	TickDotSize  = 2.0
	TickStepDegs = 360.0 / TickCount

	// Degrees swept per unit on the dial.
	DegreesPerSecond = 360.0 / 60.0
	DegreesPerMinute = 360.0 / 60.0
	DegreesPerHour   = 360.0 / 12.0

	HoursPerDial     = 12
	MinutesPerHour   = 60.0
	SecondsPerMinute = 60.0

	// FaceMargin is the padding between the tick dots and the window edge.
	FaceMargin = 20.0

	// RedrawInterval is the period between two hand redraws.
	RedrawInterval = 1 * time.Second
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	SettingsWindowWidth = 420

	// Preference Keys
	PrefLanguage      = "language"
	PrefRadius        = "radius"
	PrefServerPort    = "server_port"
	PrefServerEnabled = "server_enabled"
	PrefLastRun       = "last_run_version"

	// TrayTimeFormat is the layout of the time shown in the tray status item.
	TrayTimeFormat = "15:04"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinClock       = "win_clock_title"
	TKeyWinSettings    = "win_settings_title"
	TKeyMenuShowClock  = "menu_show_clock"
	TKeyMenuSettings   = "menu_settings"
	TKeyTrayStatus     = "tray_status" // Requires Time
	TKeyLblLanguage    = "lbl_language"
	TKeyHelpLanguage   = "help_language"
	TKeyLblRadius      = "lbl_radius"
	TKeyHelpRadius     = "help_radius"
	TKeyLblFace        = "lbl_face"
	TKeyLblServer      = "lbl_server"
	TKeyLblServerOn    = "lbl_server_enabled"
	TKeyLblPort        = "lbl_server_port"
	TKeyHelpPort       = "help_port"
	TKeyBtnSave        = "btn_save"
	TKeyBtnCancel      = "btn_cancel"
	TKeyLblFooter      = "lbl_footer"
	TKeyErrRadiusReq   = "err_radius_required"
	TKeyErrRadiusNum   = "err_radius_number"
	TKeyErrRadiusRange = "err_radius_range"
	TKeyErrPortReq     = "err_port_required"
	TKeyErrPortNum     = "err_port_number"
	TKeyErrPortRange   = "err_port_range"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultPort          = "18181"
	DefaultLanguage      = "en"
	DefaultServerEnabled = true
	DefaultLogLevel      = "info"

	MinPort = 1
	MaxPort = 65535
)

// -----------------------------------------------------------------------------
// Configuration File
// -----------------------------------------------------------------------------

const (
	EnvRadius = "CLOCKFACE_RADIUS"
	EnvPort   = "CLOCKFACE_PORT"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "1"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	RouteHealth        = "/health"
	RouteMetrics       = "/metrics"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeSVG             = "image/svg+xml"
	MimeJSON            = "application/json"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`

	HealthBody = `{"status":"healthy"}`
)

// -----------------------------------------------------------------------------
// Metrics
// -----------------------------------------------------------------------------

const (
	MetricsNamespace      = "clockface"
	MetricRedraws         = "snapshot_updates_total"
	MetricRedrawsHelp     = "Number of clock face snapshots published."
	MetricLastRedraw      = "snapshot_last_update_timestamp_seconds"
	MetricLastRedrawHelp  = "Unix time of the most recent snapshot."
	MetricSnapshotSize    = "snapshot_size_bytes"
	MetricSnapshotSizeHlp = "Size of the most recent SVG snapshot."
)

// -----------------------------------------------------------------------------
// SVG Snapshot
// -----------------------------------------------------------------------------

const (
	SVGStroke     = "#ffffff"
	SVGBackground = "#202124"
	SVGLineCap    = "round"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup   = "server startup failed"
	ErrServerShutdown  = "server shutdown failed"
	ErrPortRequired    = "server port is required"
	ErrPortRange       = "server port must be between 1 and 65535"
	ErrRadiusRange     = "radius must be between 20 and 1000"
	ErrConfigRead      = "failed to read config file"
	ErrConfigParse     = "failed to parse config file"
	ErrConfigEnv       = "environment variable error"
	ErrConfigInvalid   = "invalid configuration"
	ErrLanguage        = "unsupported language"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrWriteResp       = "failed to write response body"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrTrayUnsupported = "system tray not supported on this platform/driver"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Clock face initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Messages
// -----------------------------------------------------------------------------

const (
	FallbackTrayLabel = "Go Clockface"

	TitleStartupError = "Startup Error"
	MsgPortBusy       = "Port %s is busy or unavailable."

	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgAppStarting    = "Starting application"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgCacheUpdated   = "Snapshot cache updated"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgTicksDrawn     = "Tick marks drawn"
	MsgHandsRedrawn   = "Hands redrawn"
	MsgRendererStart  = "Clock renderer started"
	MsgAlreadyRunning = "Clock renderer already running"
	MsgTaskStopped    = "Repeating task stopped"
	MsgFaceBuilt      = "Clock face built"
	MsgFaceStopped    = "Clock face stopped"
	MsgConfigLoaded   = "Configuration file loaded"
	MsgPrefsSaved     = "Saving preferences"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyInterval  = "interval"
	LogKeyRadius    = "radius"
	LogKeyCount     = "count"
	LogKeyHour      = "hour"
	LogKeyMinute    = "minute"
	LogKeySecond    = "second"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyPath      = "path"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI        = "ui"
	CompUISet     = "ui_settings"
	CompEngine    = "engine"
	CompScheduler = "scheduler"
	CompServer    = "server"
	CompConfig    = "config"
	CompMain      = "main"
	CompI18n      = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
