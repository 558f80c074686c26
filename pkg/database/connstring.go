package database

import (
	"maps"
	"net/url"
	"slices"
	"strings"
)

const (
	jdbcPrefix = "jdbc:"
	jdbcScheme = "postgresql:"
)

// pgjdbc parameters with a libpq/pgx equivalent.
var jdbcParamRenames = map[string]string{
	"ApplicationName": "application_name",
	"currentSchema":   "search_path",
	"connectTimeout":  "connect_timeout",
	"loginTimeout":    "connect_timeout",
}

var jdbcTargetServerTypes = map[string]string{
	"any":             "any",
	"primary":         "primary",
	"master":          "primary",
	"secondary":       "standby",
	"slave":           "standby",
	"preferSecondary": "prefer-standby",
	"preferSlave":     "prefer-standby",
}

// pgjdbc parameters that only tune the Java driver. pgx would send them to
// the server as startup parameters, which the server rejects.
var jdbcDriverOnlyParams = map[string]struct{}{
	"allowEncodingChanges":          {},
	"assumeMinServerVersion":        {},
	"autosave":                      {},
	"binaryTransfer":                {},
	"binaryTransferDisable":         {},
	"binaryTransferEnable":          {},
	"cancelSignalTimeout":           {},
	"cleanupSavepoints":             {},
	"defaultRowFetchSize":           {},
	"disableColumnSanitiser":        {},
	"escapeSyntaxCallMode":          {},
	"gsslib":                        {},
	"hostRecheckSeconds":            {},
	"jaasApplicationName":           {},
	"jaasLogin":                     {},
	"kerberosServerName":            {},
	"loadBalanceHosts":              {},
	"logServerErrorDetail":          {},
	"logUnclosedConnections":        {},
	"loggerFile":                    {},
	"loggerLevel":                   {},
	"preferQueryMode":               {},
	"prepareThreshold":              {},
	"preparedStatementCacheQueries": {},
	"preparedStatementCacheSizeMiB": {},
	"protocolVersion":               {},
	"quoteReturningIdentifiers":     {},
	"readOnly":                      {},
	"readOnlyMode":                  {},
	"reWriteBatchedInserts":         {},
	"receiveBufferSize":             {},
	"sendBufferSize":                {},
	"socketFactory":                 {},
	"socketFactoryArg":              {},
	"socketTimeout":                 {},
	"sslfactory":                    {},
	"sslfactoryarg":                 {},
	"sslhostnameverifier":           {},
	"sslpasswordcallback":           {},
	"sslResponseTimeout":            {},
	"sspiServiceClass":              {},
	"stringtype":                    {},
	"tcpKeepAlive":                  {},
	"targetServerType":              {},
	"useSpnego":                     {},
}

// NormalizeConnString turns a JDBC URL (jdbc:postgresql://host/db,
// jdbc:postgresql:db, jdbc:postgresql:/) into a URL pgx understands and
// returns the pgjdbc-only parameters it dropped. Other inputs are returned
// trimmed.
func NormalizeConnString(s string) (string, []string) {
	s = strings.TrimSpace(s)
	if len(s) < len(jdbcPrefix) || !strings.EqualFold(s[:len(jdbcPrefix)], jdbcPrefix) {
		return s, nil
	}
	s = s[len(jdbcPrefix):]
	if strings.HasPrefix(s, jdbcScheme) && !strings.HasPrefix(s, jdbcScheme+"//") {
		s = jdbcScheme + "///" + strings.TrimPrefix(s[len(jdbcScheme):], "/")
	}

	u, err := url.Parse(s)
	if err != nil || u.RawQuery == "" {
		return s, nil
	}
	q, dropped := translateJDBCParams(u.Query())
	u.RawQuery = q.Encode()
	return u.String(), dropped
}

// translateJDBCParams keeps native libpq keys as they are. A renamed key
// never overrides a native one given explicitly; among renamed keys the
// last in sorted order wins (loginTimeout over connectTimeout).
func translateJDBCParams(q url.Values) (url.Values, []string) {
	out := url.Values{}
	var dropped []string
	for _, key := range slices.Sorted(maps.Keys(q)) {
		value := q.Get(key)
		switch key {
		case "ssl":
			if q.Get("sslmode") == "" {
				if strings.EqualFold(value, "true") {
					out.Set("sslmode", "require")
				} else {
					out.Set("sslmode", "disable")
				}
			}
			continue
		case "targetServerType":
			if mode, ok := jdbcTargetServerTypes[value]; ok {
				if q.Get("target_session_attrs") == "" {
					out.Set("target_session_attrs", mode)
				}
				continue
			}
		}
		if _, ok := jdbcDriverOnlyParams[key]; ok {
			dropped = append(dropped, key)
			continue
		}
		if renamed, ok := jdbcParamRenames[key]; ok {
			if q.Get(renamed) == "" {
				out.Set(renamed, value)
			}
			continue
		}
		out.Set(key, value)
	}
	return out, dropped
}
