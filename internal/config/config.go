package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"zrc/internal/scanner"
)

// Config holds the application configuration
type Config struct {
	RCPath      string `mapstructure:"path"`
	Format      string `mapstructure:"format"`
	MaxFileSize int64  `mapstructure:"max_file_size"`

	EnableDefaults               bool   `mapstructure:"enable_defaults"`
	EnableCustomHeaderPattern    bool   `mapstructure:"enable_custom_header_pattern"`
	CustomHeaderPattern          string `mapstructure:"custom_header_pattern"`
	EnableCustomStartEndPatterns bool   `mapstructure:"enable_custom_start_end_patterns"`
	CustomStartPattern           string `mapstructure:"custom_start_pattern"`
	CustomEndPattern             string `mapstructure:"custom_end_pattern"`

	ColorSection  string `mapstructure:"color_section"`
	ColorKind     string `mapstructure:"color_kind"`
	ColorLine     string `mapstructure:"color_line"`
	ColorDim      string `mapstructure:"color_dim"`
	ColorBorder   string `mapstructure:"color_border"`
	ColorCursor   string `mapstructure:"color_cursor"`
	ColorSelected string `mapstructure:"color_selected"`

	ColumnGap     int `mapstructure:"column_gap"`
	ColumnSection int `mapstructure:"column_section"`
	ColumnName    int `mapstructure:"column_name"`
	ColumnLine    int `mapstructure:"column_line"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("path", "~/.zshrc")
	viper.SetDefault("format", "text")
	viper.SetDefault("max_file_size", 1<<20) // 1 MiB

	viper.SetDefault("enable_defaults", true)
	viper.SetDefault("enable_custom_header_pattern", false)
	viper.SetDefault("custom_header_pattern", "")
	viper.SetDefault("enable_custom_start_end_patterns", false)
	viper.SetDefault("custom_start_pattern", "")
	viper.SetDefault("custom_end_pattern", "")

	viper.SetDefault("color_section", "36") // Cyan
	viper.SetDefault("color_kind", "32")    // Green
	viper.SetDefault("color_line", "37")
	viper.SetDefault("color_dim", "241")
	viper.SetDefault("color_border", "240")
	viper.SetDefault("color_cursor", "212")
	viper.SetDefault("color_selected", "236")

	viper.SetDefault("column_gap", 4)
	viper.SetDefault("column_section", 30)
	viper.SetDefault("column_name", 24)
	viper.SetDefault("column_line", 60)

	viper.SetConfigName("zrc")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "zrc"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("ZRC")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetPath returns the rc file path with tilde expansion
func GetPath() string {
	return ExpandTilde(viper.GetString("path"))
}

// ExpandTilde expands ~ to the user's home directory
func ExpandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetFormat returns the output format (text or yaml)
func GetFormat() string {
	return viper.GetString("format")
}

// GetMaxFileSize returns the file size cap in bytes
func GetMaxFileSize() int64 {
	return viper.GetInt64("max_file_size")
}

// ScannerOptions assembles the marker grammar options for a scan
func ScannerOptions() scanner.Options {
	return scanner.Options{
		EnableDefaults:               viper.GetBool("enable_defaults"),
		EnableCustomHeaderPattern:    viper.GetBool("enable_custom_header_pattern"),
		CustomHeaderPattern:          viper.GetString("custom_header_pattern"),
		EnableCustomStartEndPatterns: viper.GetBool("enable_custom_start_end_patterns"),
		CustomStartPattern:           viper.GetString("custom_start_pattern"),
		CustomEndPattern:             viper.GetString("custom_end_pattern"),
	}
}

// GetColorSection returns ANSI color code for section labels
func GetColorSection() string {
	return viper.GetString("color_section")
}

// GetColorKind returns ANSI color code for entry kinds
func GetColorKind() string {
	return viper.GetString("color_kind")
}

// GetColorLine returns ANSI color code for source lines
func GetColorLine() string {
	return viper.GetString("color_line")
}

// GetColorDim returns the dim text color
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// GetColorBorder returns the border color
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// GetColorCursor returns the cursor color
func GetColorCursor() string {
	return viper.GetString("color_cursor")
}

// GetColorSelected returns the selection background color
func GetColorSelected() string {
	return viper.GetString("color_selected")
}

// GetColumnGap returns spacing between columns
func GetColumnGap() int {
	return viper.GetInt("column_gap")
}

// GetColumnSection returns max section column width
func GetColumnSection() int {
	return viper.GetInt("column_section")
}

// GetColumnName returns max name column width
func GetColumnName() int {
	return viper.GetInt("column_name")
}

// GetColumnLine returns max source line column width
func GetColumnLine() int {
	return viper.GetInt("column_line")
}

// SetFormat sets the output format at runtime
func SetFormat(format string) {
	viper.Set("format", format)
	C.Format = format
}

// SetPath sets the rc file path at runtime
func SetPath(path string) {
	viper.Set("path", path)
	C.RCPath = path
}
