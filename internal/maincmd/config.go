package maincmd

import (
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Config names the compiler's output streams as file names, plus the
// directory they are written under. Every field has a hard-coded default;
// the yaml file and environment variables only let an operator relocate
// the output files, never change the address layout the code generator's
// invariants depend on (the temp base, the stack-pointer cell and the two
// reserved program-buffer slots are never configurable).
type Config struct {
	OutputDir string `yaml:"output_dir" env:"CMINUSC_OUTPUT_DIR"`

	TokensFile         string `yaml:"tokens_file" env:"CMINUSC_TOKENS_FILE"`
	LexicalErrorsFile  string `yaml:"lexical_errors_file" env:"CMINUSC_LEXICAL_ERRORS_FILE"`
	SyntaxErrorsFile   string `yaml:"syntax_errors_file" env:"CMINUSC_SYNTAX_ERRORS_FILE"`
	SymbolTableFile    string `yaml:"symbol_table_file" env:"CMINUSC_SYMBOL_TABLE_FILE"`
	ParseTreeFile      string `yaml:"parse_tree_file" env:"CMINUSC_PARSE_TREE_FILE"`
	OutputFile         string `yaml:"output_file" env:"CMINUSC_OUTPUT_FILE"`
	SemanticErrorsFile string `yaml:"semantic_errors_file" env:"CMINUSC_SEMANTIC_ERRORS_FILE"`
}

// DefaultConfig returns the compiler's fixed output file names.
func DefaultConfig() Config {
	return Config{
		TokensFile:         "tokens.txt",
		LexicalErrorsFile:  "lexical_errors.txt",
		SyntaxErrorsFile:   "syntax_errors.txt",
		SymbolTableFile:    "symbol_table.txt",
		ParseTreeFile:      "parse_tree.txt",
		OutputFile:         "output.txt",
		SemanticErrorsFile: "semantic_errors.txt",
	}
}

// LoadConfig builds a Config starting from DefaultConfig, optionally
// overridden by a yaml file at yamlPath (ignored if it does not exist), and
// finally by any CMINUSC_* environment variable.
func LoadConfig(yamlPath string) (Config, error) {
	cfg := DefaultConfig()

	if yamlPath != "" {
		b, err := os.ReadFile(yamlPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, err
			}
		case os.IsNotExist(err):
			// no config file: defaults stand.
		default:
			return cfg, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
