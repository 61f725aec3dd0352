package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ilkoid/phoenix-lab/pkg/api"
)

// humanize оборачивает ошибку backend текстом, который увидел бы
// пользователь формы. Исходная ошибка доступна через errors.Unwrap.
func humanize(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s (%w)", apiErr.HumanMessage(), err)
	}
	return fmt.Errorf("%s (%w)", api.Classify(err).HumanMessage(), err)
}

// printJSON выводит значение в JSON с отступами.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
