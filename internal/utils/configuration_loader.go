package utils

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	environmentKeySeparatorOldConstant              = "."
	environmentKeySeparatorNewConstant              = "_"
	configurationReadErrorTemplateConstant          = "failed to read configuration: %w"
	configurationUnmarshalErrorTemplateConstant     = "failed to parse configuration: %w"
	embeddedConfigurationMergeErrorTemplateConstant = "failed to merge embedded configuration: %w"
	environmentBindingErrorTemplateConstant         = "failed to bind environment variable %s: %w"
	sliceDecodeSeparatorConstant                    = ","
)

// ConfigurationLoader wraps Viper to load structured configuration files and environment overrides.
type ConfigurationLoader struct {
	configurationName         string
	configurationType         string
	environmentPrefix         string
	searchPaths               []string
	environmentKeyReplacer    *strings.Replacer
	environmentBindings       map[string]string
	embeddedConfiguration     []byte
	embeddedConfigurationType string
}

// LoadedConfiguration surfaces metadata about the resolved configuration.
type LoadedConfiguration struct {
	ConfigFileUsed string
}

// NewConfigurationLoader creates a loader that searches known paths and respects an environment prefix.
func NewConfigurationLoader(configurationName string, configurationType string, environmentPrefix string, searchPaths []string) *ConfigurationLoader {
	duplicatedSearchPaths := make([]string, len(searchPaths))
	copy(duplicatedSearchPaths, searchPaths)

	return &ConfigurationLoader{
		configurationName:      configurationName,
		configurationType:      configurationType,
		environmentPrefix:      environmentPrefix,
		searchPaths:            duplicatedSearchPaths,
		environmentKeyReplacer: strings.NewReplacer(environmentKeySeparatorOldConstant, environmentKeySeparatorNewConstant),
	}
}

// SetEnvironmentBindings maps configuration keys to exact environment variable names.
// Once bindings are set only the bound variables are consulted; the prefixed
// automatic lookup is disabled.
func (loader *ConfigurationLoader) SetEnvironmentBindings(bindings map[string]string) {
	if loader == nil {
		return
	}

	loader.environmentBindings = nil
	if len(bindings) == 0 {
		return
	}

	loader.environmentBindings = make(map[string]string, len(bindings))
	for configurationKey, environmentVariable := range bindings {
		trimmedKey := strings.TrimSpace(configurationKey)
		trimmedVariable := strings.TrimSpace(environmentVariable)
		if len(trimmedKey) == 0 || len(trimmedVariable) == 0 {
			continue
		}
		loader.environmentBindings[trimmedKey] = trimmedVariable
	}
}

// SetEmbeddedConfiguration stores embedded configuration data merged before user-provided configuration files.
func (loader *ConfigurationLoader) SetEmbeddedConfiguration(configurationData []byte, configurationType string) {
	if loader == nil {
		return
	}

	loader.embeddedConfiguration = nil
	loader.embeddedConfigurationType = strings.TrimSpace(configurationType)

	if len(configurationData) == 0 {
		return
	}

	duplicatedData := make([]byte, len(configurationData))
	copy(duplicatedData, configurationData)
	loader.embeddedConfiguration = duplicatedData
}

// LoadConfiguration populates targetConfiguration using configuration files, defaults, and environment variables.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, targetConfiguration any) (LoadedConfiguration, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigName(loader.configurationName)
	viperInstance.SetConfigType(loader.configurationType)

	if len(loader.embeddedConfiguration) > 0 {
		configurationType := loader.configurationType
		if len(loader.embeddedConfigurationType) > 0 {
			configurationType = loader.embeddedConfigurationType
		}

		viperInstance.SetConfigType(configurationType)
		mergeError := viperInstance.MergeConfig(bytes.NewReader(loader.embeddedConfiguration))
		if mergeError != nil {
			return LoadedConfiguration{}, fmt.Errorf(embeddedConfigurationMergeErrorTemplateConstant, mergeError)
		}

		viperInstance.SetConfigType(loader.configurationType)
	}

	for _, searchPath := range loader.searchPaths {
		viperInstance.AddConfigPath(searchPath)
	}

	if len(loader.environmentBindings) > 0 {
		if bindingError := loader.bindEnvironment(viperInstance); bindingError != nil {
			return LoadedConfiguration{}, bindingError
		}
	} else {
		viperInstance.SetEnvPrefix(loader.environmentPrefix)
		if loader.environmentKeyReplacer != nil {
			viperInstance.SetEnvKeyReplacer(loader.environmentKeyReplacer)
		}
		viperInstance.AutomaticEnv()
	}

	for defaultKey, defaultValue := range defaultValues {
		viperInstance.SetDefault(defaultKey, defaultValue)
	}

	if len(configurationFilePath) > 0 {
		viperInstance.SetConfigFile(configurationFilePath)
	}

	readError := viperInstance.MergeInConfig()
	if readError != nil {
		var notFoundError viper.ConfigFileNotFoundError
		if !errors.As(readError, &notFoundError) {
			return LoadedConfiguration{}, fmt.Errorf(configurationReadErrorTemplateConstant, readError)
		}
	}

	unmarshalError := viperInstance.Unmarshal(targetConfiguration, viper.DecodeHook(configurationDecodeHook()))
	if unmarshalError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationUnmarshalErrorTemplateConstant, unmarshalError)
	}

	loadedConfiguration := LoadedConfiguration{
		ConfigFileUsed: viperInstance.ConfigFileUsed(),
	}

	return loadedConfiguration, nil
}

func (loader *ConfigurationLoader) bindEnvironment(viperInstance *viper.Viper) error {
	configurationKeys := make([]string, 0, len(loader.environmentBindings))
	for configurationKey := range loader.environmentBindings {
		configurationKeys = append(configurationKeys, configurationKey)
	}
	sort.Strings(configurationKeys)

	for _, configurationKey := range configurationKeys {
		environmentVariable := loader.environmentBindings[configurationKey]
		if bindError := viperInstance.BindEnv(configurationKey, environmentVariable); bindError != nil {
			return fmt.Errorf(environmentBindingErrorTemplateConstant, environmentVariable, bindError)
		}
	}
	return nil
}

func configurationDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		trimStringDecodeHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(sliceDecodeSeparatorConstant),
	)
}

func trimStringDecodeHook(sourceType reflect.Type, targetType reflect.Type, data any) (any, error) {
	if sourceType.Kind() != reflect.String || targetType.Kind() != reflect.String {
		return data, nil
	}
	stringValue, isString := data.(string)
	if !isString {
		return data, nil
	}
	return strings.TrimSpace(stringValue), nil
}
