package totp

import "time"

// Config carries deployment-level defaults for two-factor enrollment and
// verification, loaded from environment variables (see core/config).
type Config struct {
	// Issuer is the name shown in authenticator apps next to the account.
	Issuer string `env:"TOTP_ISSUER" envDefault:"Lockit"`
	// Digits is the code width issued to users.
	Digits int `env:"TOTP_DIGITS" envDefault:"6"`
	// Period is the counter time step.
	Period time.Duration `env:"TOTP_PERIOD" envDefault:"30s"`
	// Window is the number of counter steps accepted on each side of the
	// current one during verification. The default of 6 tolerates three
	// minutes of drift at a 30-second period; lowering it reduces the
	// replay surface at the cost of locking out devices with skewed clocks.
	Window int `env:"TOTP_WINDOW" envDefault:"6"`
}

// VerifyOpts converts the config into verification options.
func (c Config) VerifyOpts() VerifyOpts {
	return VerifyOpts{
		Digits: c.Digits,
		Window: c.Window,
		Period: c.Period,
	}
}
