// Package validators holds the value validator contract used by the
// jsonconfig builder and a set of stock validators.
//
// A validator receives the resolved value of a configuration field and
// reports whether it is acceptable, optionally with a message that explains
// the rejection. Validators are pure and must not modify the value.
//
//	builder := jsonconfig.NewBuilder().
//	    ValidateFieldValue("server.port", validators.IsUnreservedPort).
//	    ValidateFieldValue("mode", validators.IsValidChoice("dev", "prod"))
package validators
