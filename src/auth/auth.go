package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"git.noga.studio/noga/site/src/db"
	"git.noga.studio/noga/site/src/models"
	"git.noga.studio/noga/site/src/oops"
	"golang.org/x/crypto/argon2"
)

type HashAlgorithm string

const Argon2id HashAlgorithm = "argon2id"

const saltLength = 16
const keyLength = 64

type HashedPassword struct {
	Algorithm  HashAlgorithm
	AlgoConfig string // hash parameters (work factor etc.)

	// Always stored in a form that can go straight into the database
	// (base64-encoded).
	Salt string
	Hash string
}

func ParsePasswordString(s string) (HashedPassword, error) {
	pieces := strings.SplitN(s, "$", 4)
	if len(pieces) < 4 {
		return HashedPassword{}, oops.New(nil, "unrecognized password string format")
	}

	return HashedPassword{
		Algorithm:  HashAlgorithm(pieces[0]),
		AlgoConfig: pieces[1],
		Salt:       pieces[2],
		Hash:       pieces[3],
	}, nil
}

func (p HashedPassword) String() string {
	return fmt.Sprintf("%s$%s$%s$%s", p.Algorithm, p.AlgoConfig, p.Salt, p.Hash)
}

type Argon2idConfig struct {
	Time      uint32
	Memory    uint32
	Threads   uint8
	KeyLength uint32
}

func ParseArgon2idConfig(cfg string) (Argon2idConfig, error) {
	parts := strings.Split(cfg, ",")
	if len(parts) < 4 {
		return Argon2idConfig{}, oops.New(nil, "not enough parts in Argon2id config")
	}

	t64, err := strconv.ParseUint(parts[0][2:], 10, 32)
	if err != nil {
		return Argon2idConfig{}, oops.New(err, "failed to parse time in Argon2id config")
	}

	m64, err := strconv.ParseUint(parts[1][2:], 10, 32)
	if err != nil {
		return Argon2idConfig{}, oops.New(err, "failed to parse memory in Argon2id config")
	}

	p64, err := strconv.ParseUint(parts[2][2:], 10, 8)
	if err != nil {
		return Argon2idConfig{}, oops.New(err, "failed to parse threads in Argon2id config")
	}

	l64, err := strconv.ParseUint(parts[3][2:], 10, 32)
	if err != nil {
		return Argon2idConfig{}, oops.New(err, "failed to parse key length in Argon2id config")
	}

	return Argon2idConfig{
		Time:      uint32(t64),
		Memory:    uint32(m64),
		Threads:   uint8(p64),
		KeyLength: uint32(l64),
	}, nil
}

func (c Argon2idConfig) String() string {
	return fmt.Sprintf("t=%v,m=%v,p=%v,l=%v", c.Time, c.Memory, c.Threads, c.KeyLength)
}

func CheckPassword(password string, hashedPassword HashedPassword) (bool, error) {
	switch hashedPassword.Algorithm {
	case Argon2id:
		cfg, err := ParseArgon2idConfig(hashedPassword.AlgoConfig)
		if err != nil {
			return false, err
		}

		salt, err := base64.StdEncoding.DecodeString(hashedPassword.Salt)
		if err != nil {
			return false, oops.New(err, "failed to decode salt")
		}

		newHash := argon2.IDKey([]byte(password), salt, cfg.Time, cfg.Memory, cfg.Threads, cfg.KeyLength)
		newHashEnc := base64.StdEncoding.EncodeToString(newHash)

		return subtle.ConstantTimeCompare([]byte(newHashEnc), []byte(hashedPassword.Hash)) == 1, nil
	default:
		return false, oops.New(nil, "unrecognized password hash algorithm: %s", hashedPassword.Algorithm)
	}
}

func HashPassword(password string) HashedPassword {
	// Parameters per the OWASP password storage cheat sheet.
	salt := make([]byte, saltLength)
	io.ReadFull(rand.Reader, salt)
	saltEnc := base64.StdEncoding.EncodeToString(salt)

	cfg := Argon2idConfig{
		Time:      1,
		Memory:    40 * 1024, // KiB
		Threads:   1,
		KeyLength: keyLength,
	}

	key := argon2.IDKey([]byte(password), salt, cfg.Time, cfg.Memory, cfg.Threads, cfg.KeyLength)
	keyEnc := base64.StdEncoding.EncodeToString(key)

	return HashedPassword{
		Algorithm:  Argon2id,
		AlgoConfig: cfg.String(),
		Salt:       saltEnc,
		Hash:       keyEnc,
	}
}

var ErrUserDoesNotExist = errors.New("user does not exist")

func FetchUserByEmail(ctx context.Context, conn db.ConnOrTx, email string) (*models.User, error) {
	user, err := db.QueryOne[models.User](ctx, conn,
		`
		SELECT *
		FROM admin_user
		WHERE LOWER(email) = LOWER($1)
		`,
		email,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, ErrUserDoesNotExist
		}
		return nil, oops.New(err, "failed to fetch user by email")
	}
	return user, nil
}

func CreateUser(ctx context.Context, conn db.ConnOrTx, email, name, password string) (*models.User, error) {
	hashed := HashPassword(password)
	user, err := db.QueryOne[models.User](ctx, conn,
		`
		INSERT INTO admin_user (email, password, name, date_joined)
		VALUES ($1, $2, $3, $4)
		RETURNING *
		`,
		email, hashed.String(), name, time.Now(),
	)
	if err != nil {
		return nil, oops.New(err, "failed to create user")
	}
	return user, nil
}

func DeleteUser(ctx context.Context, conn db.ConnOrTx, id int) error {
	tag, err := conn.Exec(ctx, "DELETE FROM admin_user WHERE id = $1", id)
	if err != nil {
		return oops.New(err, "failed to delete user")
	}
	if tag.RowsAffected() < 1 {
		return ErrUserDoesNotExist
	}
	return nil
}

func UpdatePassword(ctx context.Context, conn db.ConnOrTx, email string, hp HashedPassword) error {
	tag, err := conn.Exec(ctx, "UPDATE admin_user SET password = $1 WHERE LOWER(email) = LOWER($2)", hp.String(), email)
	if err != nil {
		return oops.New(err, "failed to update password")
	}
	if tag.RowsAffected() < 1 {
		return ErrUserDoesNotExist
	}
	return nil
}

func SetPassword(ctx context.Context, conn db.ConnOrTx, email string, password string) error {
	return UpdatePassword(ctx, conn, email, HashPassword(password))
}
