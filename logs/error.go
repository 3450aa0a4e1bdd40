package logs

import (
	"context"
	"errors"
	"fmt"
)

func WrapPass(ctx context.Context, err error) error {
	pass := PassFrom(ctx)
	if pass == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("pass: %s", pass))
}
