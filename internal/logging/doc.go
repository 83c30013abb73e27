// Package logging provides structured logging for the combobox demo.
//
// The package wraps a zap logger behind a small set of package-level
// functions. The terminal UI owns stdout, so output goes to a log file
// rather than the console:
//
//	if err := logging.Initialize("debug", "combobox.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.Info("Item selected", zap.String("value", item.Value))
//
// When no level is given (and COMBOBOX_LOG_LEVEL is unset) logging is
// silent: every call goes to a nop logger.
package logging
