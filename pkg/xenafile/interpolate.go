package xenafile

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"text/template"
)

// interpolate renders $( ... ) template expressions in a Xenafile.
// Only a small function set is supported; the one that matters is
// variable, which keeps credentials such as github tokens out of
// committed Xenafiles.
func interpolate(name string, in []byte, variables map[string]any) ([]byte, error) {
	t, err := template.New(name).
		Funcs(template.FuncMap{
			"variable": func(key string) (string, error) {
				if variables == nil {
					return "", errors.New("--variable or --variables-file must be specified")
				}
				val, ok := variables[key]
				if !ok {
					return "", fmt.Errorf("could not find variable with key %q", key)
				}
				return fmt.Sprintf("%v", val), nil
			},
			"regexReplaceAll": func(regex, inputString, replaceString string) (string, error) {
				re, err := regexp.Compile(regex)
				if err != nil {
					return "", err
				}
				return re.ReplaceAllString(inputString, replaceString), nil
			},
		}).
		Delims("$(", ")").
		Option("missingkey=error").
		Parse(string(in))
	if err != nil {
		return nil, fmt.Errorf("failed when parsing a %w", err)
	}

	var buffer bytes.Buffer
	err = t.Execute(&buffer, variables)
	if err != nil {
		return nil, fmt.Errorf("failed when rendering a %w", err)
	}

	return buffer.Bytes(), nil
}
