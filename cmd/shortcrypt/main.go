package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/saylorsolutions/shortcrypt/cmd/internal"
	"github.com/saylorsolutions/shortcrypt/pkg/shortcrypt"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	formatURL = "url"
	formatQR  = "qr"
	formatHex = "hex"
)

var (
	version = "dev"

	errUsage = errors.New("usage requested")
)

type config struct {
	Key string `env:"SHORTCRYPT_KEY"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			return
		}
		internal.Fatal("%v", err)
	}
}

func run(args []string, out io.Writer) error {
	var (
		cfg         config
		helpFlag    bool
		decryptFlag bool
		verboseFlag bool
		keyFlag     string
		formatFlag  string
	)
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}

	flags := flag.NewFlagSet("shortcrypt", flag.ContinueOnError)
	flags.SetOutput(out)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&decryptFlag, "decrypt", "d", false, "Decrypt each TEXT instead of encrypting it.")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Log each step to stderr.")
	flags.StringVarP(&keyFlag, "key", "k", "", "Key used to encrypt or decrypt. Overrides SHORTCRYPT_KEY.")
	flags.StringVarP(&formatFlag, "format", "f", formatURL, "Text format, one of 'url', 'qr', or 'hex'.")
	flags.Usage = func() {
		_, _ = fmt.Fprintf(out, `
shortcrypt %s encrypts each TEXT argument into a short, random looking string, or decrypts it again with -d.
The 'url' format is safe to use in a URL path segment, the 'qr' format only uses symbols from QR code alphanumeric mode, and 'hex' prints the raw cipher bytes.

USAGE:  shortcrypt [FLAGS] [--] TEXT...

Note: URL components may start with '-', so use -- before them when decrypting.

FLAGS:
%s
ENVIRONMENT:
    SHORTCRYPT_KEY is used as the key when --key is not given.

SECURITY:
    This is obfuscation, not encryption. There is no integrity check, so decrypting with the wrong key prints garbage instead of failing.
`, version, flags.FlagUsages())
	}
	if err := flags.Parse(args); err != nil {
		flags.Usage()
		return fmt.Errorf("error parsing flags: %w", err)
	}
	if helpFlag || len(args) == 0 {
		flags.Usage()
		return errUsage
	}

	log := zap.NewNop()
	if verboseFlag {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
	}
	defer func() {
		_ = log.Sync()
	}()

	key := cfg.Key
	if flags.Changed("key") {
		key = keyFlag
	}
	if len(key) == 0 {
		return errors.New("missing key, use --key or set SHORTCRYPT_KEY")
	}
	if flags.NArg() == 0 {
		return errors.New("missing required TEXT argument")
	}

	sc, err := shortcrypt.New(key)
	if err != nil {
		return err
	}
	tr, err := transformer(sc, formatFlag, decryptFlag)
	if err != nil {
		return err
	}
	log.Debug("Processing arguments",
		zap.String("format", formatFlag),
		zap.Bool("decrypt", decryptFlag),
		zap.Int("count", flags.NArg()),
	)
	for i, arg := range flags.Args() {
		result, err := tr(arg)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		log.Debug("Transformed argument", zap.Int("index", i+1), zap.Int("inputLen", len(arg)), zap.Int("outputLen", len(result)))
		if _, err := fmt.Fprintln(out, result); err != nil {
			return err
		}
	}
	return nil
}

func transformer(sc *shortcrypt.ShortCrypt, format string, decrypt bool) (func(string) (string, error), error) {
	switch format {
	case formatURL:
		if decrypt {
			return decrypter(sc.DecryptURLComponent), nil
		}
		return func(s string) (string, error) {
			return sc.EncryptToURLComponent([]byte(s)), nil
		}, nil
	case formatQR:
		if decrypt {
			return decrypter(sc.DecryptQRCodeAlphanumeric), nil
		}
		return func(s string) (string, error) {
			return sc.EncryptToQRCodeAlphanumeric([]byte(s)), nil
		}, nil
	case formatHex:
		if decrypt {
			return func(s string) (string, error) {
				raw, err := hex.DecodeString(s)
				if err != nil {
					return "", fmt.Errorf("%w: %v", shortcrypt.ErrInvalidCharacter, err)
				}
				var c shortcrypt.Cipher
				if err := c.UnmarshalBinary(raw); err != nil {
					return "", err
				}
				plain, err := sc.Decrypt(c)
				return string(plain), err
			}, nil
		}
		return func(s string) (string, error) {
			raw, err := sc.Encrypt([]byte(s)).MarshalBinary()
			if err != nil {
				return "", err
			}
			return hex.EncodeToString(raw), nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown format '%s', expected one of '%s', '%s', or '%s'", format, formatURL, formatQR, formatHex)
	}
}

func decrypter(fn func(string) ([]byte, error)) func(string) (string, error) {
	return func(s string) (string, error) {
		plain, err := fn(s)
		if err != nil {
			return "", err
		}
		return string(plain), nil
	}
}
