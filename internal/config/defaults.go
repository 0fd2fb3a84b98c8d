package config

const (
	defaultWatchDir      = "~/Downloads"
	defaultDestRoot      = "~/SortedDownloads"
	defaultLogDir        = "~/.local/share/sortd/logs"
	defaultJournalPath   = "~/.local/share/sortd/journal.db"
	defaultScanStrategy  = "auto"
	defaultSettleSeconds = 2
	defaultPollSeconds   = 2
	defaultMaxWorkers    = 8
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// defaultContentExtensions is the content-scan allow-list: extensions whose
// text is worth extracting before classification. Everything else skips
// straight to filename-only matching.
var defaultContentExtensions = []string{
	".txt", ".md", ".rst", ".log", ".csv",
	".json", ".xml", ".yaml", ".yml", ".toml", ".ini",
	".py", ".go", ".js", ".ts", ".java", ".c", ".h", ".cpp", ".rb", ".sh",
	".html", ".css", ".sql",
	".pdf",
	".docx", ".docm", ".dotx", ".dotm",
}

// Default returns a Config populated with repository defaults, including the
// stock route table.
func Default() Config {
	return Config{
		Paths: Paths{
			WatchDir: defaultWatchDir,
			DestRoot: defaultDestRoot,
			LogDir:   defaultLogDir,
		},
		Routes: []Route{
			{Pattern: "invoice", Folder: "Finance"},
			{Pattern: "receipt", Folder: "Finance"},
			{Pattern: "tax", Folder: "Finance"},
			{Pattern: "resume", Folder: "Resumes"},
			{Pattern: "cover letter", Folder: "Resumes"},
			{Pattern: "*.png", Folder: "Images"},
			{Pattern: "*.jpg", Folder: "Images"},
			{Pattern: "*.jpeg", Folder: "Images"},
			{Pattern: "*.gif", Folder: "Images"},
			{Pattern: "report", Folder: "Reports"},
			{Pattern: "homework", Folder: "School"},
			{Pattern: "assignment", Folder: "School"},
		},
		Scan: Scan{
			Strategy:          defaultScanStrategy,
			SettleSeconds:     defaultSettleSeconds,
			PollSeconds:       defaultPollSeconds,
			MaxWorkers:        defaultMaxWorkers,
			ContentExtensions: append([]string(nil), defaultContentExtensions...),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Journal: Journal{
			Enabled: true,
			Path:    defaultJournalPath,
		},
	}
}
