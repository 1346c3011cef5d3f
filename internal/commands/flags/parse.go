package flags

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pivotal-cf/jhanda"
	"gopkg.in/yaml.v3"

	"github.com/ucsc-xena/xena-gdc/pkg/xenafile"
)

type (
	StatFunc func(string) (os.FileInfo, error)

	ProjectDirectory interface {
		ProjectDirectory() string
	}

	VariablesService interface {
		FromPathsAndPairs(paths []string, pairs []string) (templateVariables map[string]any, err error)
	}
)

type Standard struct {
	Xenafile      string   `short:"xf"  long:"xenafile"                   default:"Xenafile"         description:"path to Xenafile"`
	VariableFiles []string `short:"vf"  long:"variables-file"                                        description:"path to a file containing variables to interpolate"`
	Variables     []string `short:"vr"  long:"variable"                                              description:"key value pairs of variables to interpolate"`
}

type FetchOptions struct {
	DownloadThreads int  `short:"dt" long:"download-threads" description:"number of files to download in parallel"`
	NoConfirm       bool `short:"n" long:"no-confirm" description:"non-interactive mode, will delete extra files in the data directory without prompting"`
}

// LoadXenafiles parses and interpolates the Xenafile and parses the Xenafile.lock.
// The function parameters are for overriding default services. These parameters are
// helpful for testing, in most cases nil can be passed for both.
func (options *Standard) LoadXenafiles(fsOverride billy.Basic, variablesServiceOverride VariablesService) (_ xenafile.Xenafile, _ xenafile.XenafileLock, err error) {
	fs := fsOverride
	if fs == nil {
		fs = osfs.New("")
	}
	variablesService := variablesServiceOverride
	if variablesService == nil {
		variablesService = xenafile.NewTemplateVariablesService(fs)
	}

	templateVariables, err := variablesService.FromPathsAndPairs(options.VariableFiles, options.Variables)
	if err != nil {
		return xenafile.Xenafile{}, xenafile.XenafileLock{}, fmt.Errorf("failed to parse template variables: %s", err)
	}

	xenafileFP, err := fs.Open(options.Xenafile)
	if err != nil {
		return xenafile.Xenafile{}, xenafile.XenafileLock{}, fmt.Errorf("failed to open Xenafile: %w", err)
	}
	defer closeAndIgnoreError(xenafileFP)

	spec, err := xenafile.InterpolateAndParseXenafile(xenafileFP, templateVariables)
	if err != nil {
		return xenafile.Xenafile{}, xenafile.XenafileLock{}, err
	}

	lockFP, err := fs.Open(options.XenafileLockPath())
	if err != nil {
		return xenafile.Xenafile{}, xenafile.XenafileLock{}, fmt.Errorf("failed to open Xenafile.lock: %w", err)
	}
	defer closeAndIgnoreError(lockFP)
	lockBuf, err := io.ReadAll(lockFP)
	if err != nil {
		return xenafile.Xenafile{}, xenafile.XenafileLock{}, err
	}

	var lock xenafile.XenafileLock
	err = yaml.Unmarshal(lockBuf, &lock)
	if err != nil {
		return xenafile.Xenafile{}, xenafile.XenafileLock{}, err
	}

	return spec, lock, nil
}

func (options Standard) SaveXenafileLock(fsOverride billy.Basic, lock xenafile.XenafileLock) error {
	fs := fsOverride
	if fs == nil {
		fs = osfs.New("")
	}

	updatedLockFileYAML, err := yaml.Marshal(lock)
	if err != nil {
		return fmt.Errorf("error marshaling the Xenafile.lock: %w", err) // untestable
	}

	lockFile, err := fs.Create(options.XenafileLockPath()) // overwrites the file
	if err != nil {
		return fmt.Errorf("error reopening the Xenafile.lock for writing: %w", err)
	}

	_, err = lockFile.Write(updatedLockFileYAML)
	if err != nil {
		return fmt.Errorf("error writing to Xenafile.lock: %w", err)
	}

	return nil
}

func (options Standard) XenafileLockPath() string {
	return options.Xenafile + ".lock"
}

func (options Standard) ProjectDirectory() string {
	if options.Xenafile != "" {
		if filepath.Base(options.Xenafile) == "Xenafile" {
			return filepath.Dir(options.Xenafile)
		}
		return options.Xenafile
	}
	currentWorkingDirectory, _ := os.Getwd()
	return currentWorkingDirectory
}

// LoadWithDefaultFilePaths only sets default values if the flag is not set
// this permits explicitly setting "zero values" for in arguments without them being
// overwritten.
func LoadWithDefaultFilePaths(options ProjectDirectory, args []string, stat StatFunc) ([]string, error) {
	if stat == nil {
		stat = os.Stat
	}
	argsAfterFlags, err := jhanda.Parse(options, args)
	if err != nil {
		return nil, err
	}

	v := reflect.ValueOf(options).Elem()

	projectDir := options.ProjectDirectory()

	configurePathDefaults(v, projectDir, args, stat)

	return argsAfterFlags, nil
}

func configurePathDefaults(v reflect.Value, pathPrefix string, args []string, stat StatFunc) {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		fieldType := t.Field(i)
		if !fieldType.IsExported() {
			continue
		}

		fieldValue := v.Field(i)

		switch fieldType.Type.Kind() {
		default:
			continue
		case reflect.Struct:
			configurePathDefaults(fieldValue, pathPrefix, args, stat)
			continue
		case reflect.String:
			defaultValue, ok := fieldType.Tag.Lookup("default")
			if !ok {
				continue
			}

			value := v.Field(i).Interface().(string)

			isDefaultValue := defaultValue == value

			if !isDefaultValue {
				continue
			}

			if pathPrefix != "" {
				value = filepath.Join(pathPrefix, value)
			}

			_, err := stat(value)
			if err != nil {
				// set to zero value
				v.Field(i).Set(reflect.Zero(v.Field(i).Type()))
				continue
			}

			fieldValue.Set(reflect.ValueOf(value))
		case reflect.Slice:
			flagValues := v.Field(i).Interface().([]string)

			defaultValue, ok := fieldType.Tag.Lookup("default")
			if !ok {
				continue
			}
			defaultValues := strings.Split(defaultValue, ",")

			if len(flagValues) > len(defaultValues) && slices.Equal(flagValues[:len(defaultValues)], defaultValues) {
				fieldValue.Set(reflect.ValueOf(flagValues[len(defaultValues):]))
				continue
			}

			filteredDefaults := defaultValues[:0]
			for _, p := range defaultValues {
				p = strings.TrimSpace(p)
				if pathPrefix != "" {
					p = filepath.Join(pathPrefix, p)
				}
				_, err := stat(p)
				if err != nil {
					continue
				}
				filteredDefaults = append(filteredDefaults, p)
			}

			// if default values were found, use them,
			// else filteredDefaults will be an empty slice
			//   and the command will continue as if they were not set
			fieldValue.Set(reflect.ValueOf(filteredDefaults))
		}
	}
}

// IsSet can be used to check if a flag is set in a set
// of arguments. Both "long" and "short" flag names must
// be passed.
func IsSet(short, long string, args []string) bool {
	check := func(name string, arg string) bool {
		if name == "" {
			return false
		}

		return arg == "--"+name || arg == "-"+name ||
			strings.HasPrefix(arg, "--"+name+"=") ||
			strings.HasPrefix(arg, "-"+name+"=")
	}

	for _, a := range args {
		if check(short, a) || check(long, a) {
			return true
		}
	}

	return false
}

func Args(v any) []string {
	return encodeFlags(reflect.ValueOf(v))
}

func encodeFlags(v reflect.Value) []string {
	var result []string
	switch v.Kind() {
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			sv := v.Index(i)
			encode := encodeFlags(sv)
			result = append(result, encode...)
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			fieldVal := v.Field(i)
			fieldType := v.Type().Field(i)
			fieldAnnotation := fieldType.Tag.Get("long")
			if fieldAnnotation == "" {
				fieldAnnotation = fieldType.Tag.Get("short")
			}

			encode := encodeFlags(fieldVal)
			if fieldAnnotation != "" && fieldVal.Kind() == reflect.Bool {
				isSet := fieldVal.Bool()
				if isSet {
					result = append(result, "--"+fieldAnnotation)
				}
				continue
			}

			for _, enc := range encode {
				if fieldAnnotation != "" {
					result = append(result, "--"+fieldAnnotation, enc)
				} else {
					result = append(result, enc)
				}
			}
		}
	default:
		result = append(result, fmt.Sprintf("%v", v))
	}
	return result
}

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }
