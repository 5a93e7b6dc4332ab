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

// UserAgent identifies the HTTP client used by the vCard importer.
var UserAgent = "Go-AddressBook/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "Go AddressBook"
	AppID          = "com.github.tartampluch.go-addressbook"
	KeyringService = "com.github.tartampluch.go-addressbook"
	CommandName    = "go-addressbook"
	LogFileName    = "app.log"

	DefaultStoreFile    = "save.bin"
	DefaultJournalFile  = "logs.txt"
	DefaultSettingsFile = "addressbook.yaml"
	DefaultDataDir      = "."
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
	// Used for the store, the journal and diagnostic logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion = "version"
	FlagDebug   = "debug"
	FlagConfig  = "config"
	FlagDataDir = "data-dir"
	FlagLang    = "lang"

	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug diagnostics"
	FlagDescConfig  = "Path to the YAML settings file"
	FlagDescDataDir = "Directory holding the address book and its journal"
	FlagDescLang    = "Language of bot messages (en, uk)"

	CmdShort      = "Interactive contact manager"
	CmdLong       = "Keeps contacts (name, phones, birthday) and answers free-text commands such as\n  add Petro +380991234567\n  show-all\n  search 099"
	CmdLoginUse   = "login <user>"
	CmdLoginShort = "Store the password used by 'import' for <user> in the OS keyring"

	MsgVersionOutput = "%s version %s (commit %s, built %s) %s/%s\n"
	MsgPasswordAsk   = "Password for %s: "
	MsgPasswordSaved = "Password stored in the system keyring."
)

// -----------------------------------------------------------------------------
// Settings Defaults
// -----------------------------------------------------------------------------

const (
	DefaultLanguage      = "en"
	DefaultUpcomingDays  = 7
	DefaultImportTimeout = 30 * time.Second
	DefaultLeapYear      = 2000 // Leap year used to validate day/month of year-less vCard dates
)

// SupportedLanguages defines the list of available bot languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// Field Formats
// -----------------------------------------------------------------------------

const (
	PhonePattern      = `^\+38\d{10}$`
	BirthdayPattern   = `^\d{2}/\d{2}/\d{4}$`
	DateFormatInput   = "02/01/2006"
	DateFormatDisplay = "02/01/2006"

	FieldPhone  = "phone"
	FieldDate   = "date"
	EmptyMarker = "Empty"
	PhoneSep    = ", "
)

// -----------------------------------------------------------------------------
// Table Rendering
// -----------------------------------------------------------------------------

const (
	TableWidth       = 51
	SearchTableWidth = 45
	TableRule        = "="

	ColWidthNo       = 5
	ColWidthName     = 12
	ColWidthPhone    = 15
	ColWidthBirthday = 14

	ColNo       = "No."
	ColName     = "Name"
	ColPhone    = "Phone"
	ColBirthday = "Birthday"

	FormatRecord     = "Name: %s, Phones: %s, Birthday: %s"
	FormatIterLine   = " %d | %s"
	FormatSearchHead = "  RESULT of searching with your request: %q"
	FormatNothing    = "There was nothing found with your request: %q"
	FormatEndOfBook  = "Current AddressBook volume is %d records. Now you are in the end of AddressBook"
)

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

const (
	CmdHelp        = "help"
	CmdExit        = "exit"
	CmdGoodbye     = "goodbye"
	CmdClose       = "close"
	CmdAdd         = "add"
	CmdAddPhone    = "add-phone"
	CmdRemovePhone = "remove-phone"
	CmdChange      = "change"
	CmdShowAll     = "show-all"
	CmdShow        = "show"
	CmdPhone       = "phone"
	CmdSearch      = "search"
	CmdDelete      = "delete"
	CmdBirthday    = "birthday"
	CmdBirthdays   = "birthdays"
	CmdEach        = "each"
	CmdExportICS   = "export-ics"
	CmdImport      = "import"

	// CommandJoiner glues a two-word command ("remove phone") into its table key.
	CommandJoiner = "-"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyPrompt         = "prompt"
	TKeyGoodbye        = "msg_goodbye"
	TKeyHelpHeader     = "msg_help_header"
	TKeyUnknown        = "msg_unknown_command" // Requires Input
	TKeyAdded          = "msg_added"           // Requires Record
	TKeyPhoneAdded     = "msg_phone_added"     // Requires Name, Phone
	TKeyPhoneRemoved   = "msg_phone_removed"   // Requires Name, Phone
	TKeyChanged        = "msg_changed"         // Requires Name, Old, New
	TKeyNotFound       = "msg_not_found"       // Requires Name
	TKeyPhoneOf        = "msg_phone_of"        // Requires Name, Phones
	TKeyDeleted        = "msg_deleted"         // Requires Name
	TKeyBirthdayIn     = "msg_birthday_in"     // Requires Name, Days
	TKeyBirthdayToday  = "msg_birthday_today"  // Requires Name
	TKeyBirthdayUnset  = "msg_birthday_unset"  // Requires Name
	TKeyUpcomingHeader = "msg_upcoming_header" // Requires Days
	TKeyUpcomingLine   = "msg_upcoming_line"   // Requires Name, Date, Days, Age
	TKeyUpcomingNone   = "msg_upcoming_none"   // Requires Days
	TKeyBookEmpty      = "msg_book_empty"
	TKeyExported       = "msg_exported" // Requires Count, Path
	TKeyImported       = "msg_imported" // Requires Count, Skipped
	TKeyError          = "msg_error"    // Requires Error
	TKeyEventSummary   = "evt_summary"  // Requires Name, Age

	// Usage lines shown by "help", one per command.
	TKeyUsagePrefix = "usage_"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go AddressBook//Engine//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "goaddressbook"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	FormatUID          = "%s-%d@%s"
	FallbackSummaryAge = "Birthday: %s (%d)"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	// Date layouts used for vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"
)

// -----------------------------------------------------------------------------
// Network & Import
// -----------------------------------------------------------------------------

const (
	MaxHTTPResponseSize = 256 * 1024 * 1024 // 256MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	HeaderUserAgent     = "User-Agent"
	HeaderAccept        = "Accept"
	MimeVCard           = "text/vcard, text/x-vcard;q=0.9, */*;q=0.1"
)

// -----------------------------------------------------------------------------
// Journal
// -----------------------------------------------------------------------------

const (
	JournalTimeFormat = "15:04:05"
	JournalKeyOrigin  = "origin"

	OriginInput  = "USER INPUT"
	OriginResult = "BOT RESULT"
	OriginError  = "ERROR"

	JournalMsgLoaded = "AddressBook has been loaded!"
	JournalMsgSaved  = "AddressBook has been saved!"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrValidation      = "validation error"
	ErrInvalidFormat   = "incorrect format"
	ErrNameEmpty       = "name must not be empty"
	ErrNotFound        = "contact not found"
	ErrPhoneNotFound   = "phone not found on contact"
	ErrInvalidArgument = "invalid argument"
	ErrPageSize        = "the number must be greater than 0"
	ErrArguments       = "wrong arguments"
	ErrArgCount        = "expected %s argument(s), got %d"
	ErrNotNumber       = "argument %q is not a number"
	ErrPersistence     = "address book storage failure"
	ErrStoreRead       = "failed to read address book"
	ErrStoreWrite      = "failed to write address book"
	ErrStoreDecode     = "failed to decode address book"
	ErrStoreEncode     = "failed to encode address book"
	ErrSettingsRead    = "failed to read settings"
	ErrSettingsParse   = "failed to parse settings"
	ErrSettingsInvalid = "invalid settings"
	ErrVCardParse      = "failed to parse vCard stream"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrICalWrite       = "failed to write iCalendar file"
	ErrDateParse       = "unable to parse date"
	ErrInvalidURL      = "invalid URL structure"
	ErrProtocol        = "unsupported protocol scheme (http/https only)"
	ErrRequestBuild    = "failed to create request"
	ErrNetwork         = "network error during fetch"
	ErrRemoteStatus    = "server returned unexpected status"
	ErrBodyTooLarge    = "response exceeds the download size limit"
	ErrSourceEmpty     = "import source is empty"
	ErrFetcherMissing  = "internal error: network fetcher is not initialized"
	ErrKeyring         = "failed to access system keyring"
	ErrJournalOpen     = "failed to open journal"
	ErrJournalWrite    = "failed to write journal"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create directory"
	ErrAppFailed       = "application failed unexpectedly"
	ErrReadInput       = "failed to read input"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, leaving session"
	MsgSessionStart  = "Session started"
	MsgSessionEnd    = "Session finished"
	MsgCommandDone   = "Command executed"
	MsgCommandFailed = "Command failed"
	MsgStoreLoaded   = "Address book loaded"
	MsgStoreMissing  = "No address book yet, starting empty"
	MsgStoreSaved    = "Address book saved"
	MsgSettingsNone  = "No settings file, using defaults"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedField  = "Skipping invalid vCard field"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgImportDone    = "vCard import finished"
	MsgFetchStart    = "Initiating vCard download"
	MsgFetchStatus   = "Server returned error status"
	MsgFetchBody     = "vCards downloading"
	MsgExportDone    = "Calendar export finished"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgPassFail      = "Password retrieval failed (might be empty)"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
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
	LogKeyCount     = "count"
	LogKeySkipped   = "skipped"
	LogKeyName      = "name"
	LogKeyCommand   = "command"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyValue     = "value"
	LogKeyField     = "field"
	LogKeyUser      = "user"
	LogKeyPath      = "path"
	LogKeyDuration  = "duration_ms"
	LogKeyAuth      = "auth"
	LogKeyLength    = "content_length"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "build_date"
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
	CompMain     = "main"
	CompBot      = "bot"
	CompBook     = "book"
	CompStore    = "store"
	CompImporter = "importer"
	CompFetcher  = "fetcher"
	CompCalendar = "calendar"
	CompKeyring  = "keyring"
	CompSettings = "settings"
	CompI18n     = "i18n"
)
