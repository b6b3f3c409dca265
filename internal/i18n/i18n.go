package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations builds the message bundle. English and Spanish defaults are
// embedded; localesDir may point to extra active.*.toml files and can be empty.
func NewTranslations(defaultLang string, localesDir string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessagesEN), "default.en.toml")
	bundle.MustParseMessageFileBytes([]byte(defaultMessagesES), "default.es.toml")

	if localesDir != "" {
		files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}

		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessagesEN = `
	[app_usage]
	other = "Detect outdated syntax in a codebase with AI"

	[app_description]
	other = "MateScan walks a directory, asks an AI provider whether each source file uses outdated syntax, and reports the files that need modernizing"

	[help_command_usage]
	other = "Show help"

	[scan_command_usage]
	other = "Scan a directory for files with outdated syntax"

	[scan_command_description]
	other = "Walks the directory, filters out non-source files, and sends each remaining file to the configured AI provider for analysis"

	[scan_missing_directory]
	other = "Missing required argument: directory to scan"

	[scan_concurrency_flag_usage]
	other = "Number of files analyzed in parallel (results are sorted by path when > 1)"

	[scan_timeout_flag_usage]
	other = "Per-file analysis timeout in seconds"

	[scan_max_bytes_flag_usage]
	other = "Skip files larger than this many bytes"

	[scan_lang_flag_usage]
	other = "Output language (en, es)"

	[scanning_directory]
	other = "Analyzing directory: {{.Directory}}"

	[analyzing_file]
	other = "Analyzing: {{.Path}}"

	[no_outdated_files]
	other = "No files were found to be out of date."

	[outdated_files_header]
	other = "FILES NEEDING UPDATES"

	[outdated_file_path]
	other = "File: {{.Path}}"

	[outdated_file_reason]
	other = "Reason: {{.Reason}}"

	[total_outdated_files]
	one = "Total files needing updates: {{.Count}}"
	other = "Total files needing updates: {{.Count}}"

	[scanned_files_count]
	one = "{{.Count}} file analyzed"
	other = "{{.Count}} files analyzed"

	[error_missing_api_key]
	other = "API key for provider '{{.Provider}}' is missing. Set {{.EnvVar}} or run 'matescan config set-api-key'"

	[error_ai_client]
	other = "Could not create the AI client: {{.Error}}"

	[error_no_ai_response]
	other = "The AI returned an empty response"

	[error_invalid_response]
	other = "The AI response for '{{.Path}}' did not match the expected schema: {{.Error}}"

	[error_reading_file]
	other = "Error reading {{.Path}}: {{.Error}}"

	[file_too_large]
	other = "Skipping {{.Path}}: file exceeds {{.MaxBytes}} bytes"

	[error_analyzing_file]
	other = "Error analyzing {{.Path}}: {{.Error}}"

	[config_command_usage]
	other = "Manage MateScan configuration"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_ai_usage]
	other = "Set the active AI provider"

	[config_set_model_usage]
	other = "Set the model for the active AI provider"

	[config_set_api_key_usage]
	other = "Store an API key for a provider (environment variables still take precedence)"

	[config_set_lang_usage]
	other = "Set the output language"

	[config_updated]
	other = "Configuration updated"

	[config_invalid_provider]
	other = "Unsupported provider '{{.Provider}}'. Supported: {{.Supported}}"

	[config_invalid_model]
	other = "Model '{{.Model}}' is not valid for provider '{{.Provider}}'"

	[config_invalid_lang]
	other = "Unsupported language '{{.Lang}}'. Supported: en, es"

	[config_current]
	other = "Current configuration"

	[config_api_key_env_hint]
	other = "Tip: prefer exporting {{.EnvVar}} instead of storing the key on disk"

	[config_set_api_key_args]
	other = "Usage: matescan config set-api-key <provider> <api-key>"

	[ui_error.try_suggestion]
	other = "💡 Try: "
	`

var defaultMessagesES = `
	[app_usage]
	other = "Detectá sintaxis desactualizada en tu código con IA"

	[app_description]
	other = "MateScan recorre un directorio, le pregunta a un proveedor de IA si cada archivo usa sintaxis desactualizada y reporta los archivos que necesitan modernizarse"

	[help_command_usage]
	other = "Mostrar ayuda"

	[scan_command_usage]
	other = "Escanear un directorio en busca de archivos con sintaxis desactualizada"

	[scan_command_description]
	other = "Recorre el directorio, filtra los archivos que no son código fuente y envía cada archivo restante al proveedor de IA configurado"

	[scan_missing_directory]
	other = "Falta el argumento requerido: directorio a escanear"

	[scan_concurrency_flag_usage]
	other = "Cantidad de archivos analizados en paralelo (los resultados se ordenan por ruta cuando > 1)"

	[scan_timeout_flag_usage]
	other = "Timeout de análisis por archivo, en segundos"

	[scan_max_bytes_flag_usage]
	other = "Omitir archivos más grandes que esta cantidad de bytes"

	[scan_lang_flag_usage]
	other = "Idioma de salida (en, es)"

	[scanning_directory]
	other = "Analizando directorio: {{.Directory}}"

	[analyzing_file]
	other = "Analizando: {{.Path}}"

	[no_outdated_files]
	other = "No se encontraron archivos desactualizados."

	[outdated_files_header]
	other = "ARCHIVOS QUE NECESITAN ACTUALIZACIÓN"

	[outdated_file_path]
	other = "Archivo: {{.Path}}"

	[outdated_file_reason]
	other = "Motivo: {{.Reason}}"

	[total_outdated_files]
	one = "Total de archivos a actualizar: {{.Count}}"
	other = "Total de archivos a actualizar: {{.Count}}"

	[scanned_files_count]
	one = "{{.Count}} archivo analizado"
	other = "{{.Count}} archivos analizados"

	[error_missing_api_key]
	other = "Falta la API key del proveedor '{{.Provider}}'. Exportá {{.EnvVar}} o ejecutá 'matescan config set-api-key'"

	[error_ai_client]
	other = "No se pudo crear el cliente de IA: {{.Error}}"

	[error_no_ai_response]
	other = "La IA devolvió una respuesta vacía"

	[error_invalid_response]
	other = "La respuesta de la IA para '{{.Path}}' no cumple el esquema esperado: {{.Error}}"

	[error_reading_file]
	other = "Error al leer {{.Path}}: {{.Error}}"

	[file_too_large]
	other = "Omitiendo {{.Path}}: el archivo supera los {{.MaxBytes}} bytes"

	[error_analyzing_file]
	other = "Error al analizar {{.Path}}: {{.Error}}"

	[config_command_usage]
	other = "Administrar la configuración de MateScan"

	[config_show_usage]
	other = "Mostrar la configuración actual"

	[config_set_ai_usage]
	other = "Establecer el proveedor de IA activo"

	[config_set_model_usage]
	other = "Establecer el modelo del proveedor de IA activo"

	[config_set_api_key_usage]
	other = "Guardar una API key para un proveedor (las variables de entorno siguen teniendo prioridad)"

	[config_set_lang_usage]
	other = "Establecer el idioma de salida"

	[config_updated]
	other = "Configuración actualizada"

	[config_invalid_provider]
	other = "Proveedor '{{.Provider}}' no soportado. Soportados: {{.Supported}}"

	[config_invalid_model]
	other = "El modelo '{{.Model}}' no es válido para el proveedor '{{.Provider}}'"

	[config_invalid_lang]
	other = "Idioma '{{.Lang}}' no soportado. Soportados: en, es"

	[config_current]
	other = "Configuración actual"

	[config_api_key_env_hint]
	other = "Tip: es preferible exportar {{.EnvVar}} en lugar de guardar la key en disco"

	[config_set_api_key_args]
	other = "Uso: matescan config set-api-key <proveedor> <api-key>"

	[ui_error.try_suggestion]
	other = "💡 Probá: "
	`
