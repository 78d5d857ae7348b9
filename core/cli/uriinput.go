/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/slicingmelon/go-rawurlparser"
	"github.com/slicingmelon/urisplice/core/uri"
	"github.com/slicingmelon/urisplice/core/utils/helpers"
	"github.com/slicingmelon/urisplice/core/utils/logger"
)

// URIInput collects the URIs to process from the configured sources
type URIInput struct {
	opts *CliOptions
}

func NewURIInput(opts *CliOptions) *URIInput {
	return &URIInput{opts: opts}
}

// CollectURIs gathers URIs from all configured sources
func (p *URIInput) CollectURIs() ([]string, error) {
	var uris []string

	// Process single URI with optional substitute hosts
	if p.opts.URL != "" {
		uris = append(uris, p.opts.URL)

		if p.opts.SubstituteHostsFile != "" {
			substituted, err := p.processWithSubstituteHosts(p.opts.URL)
			if err != nil {
				return nil, err
			}
			uris = append(uris, substituted...)
		}
	}

	// Process URIs from file (if provided)
	if p.opts.URIsFile != "" {
		fileURIs, err := readLinesFromFile(p.opts.URIsFile)
		if err != nil {
			return nil, err
		}
		uris = append(uris, fileURIs...)
	}

	if len(uris) == 0 {
		return nil, fmt.Errorf("no URIs found to process")
	}

	logger.Verbose().Msgf("Collected %d URIs", len(uris))
	return uris, nil
}

// readLinesFromFile reads the non-blank lines of a file
func readLinesFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file %s: %v", path, err)
	}

	return lines, nil
}

// processWithSubstituteHosts returns one URI per substitute host, each the
// target URI with only its host replaced.
func (p *URIInput) processWithSubstituteHosts(targetURI string) ([]string, error) {
	lines, err := readLinesFromFile(p.opts.SubstituteHostsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read substitute hosts file: %w", err)
	}

	seen := make(map[string]struct{}, len(lines))
	var uris []string
	for _, line := range lines {
		host, ok := extractHost(line)
		if !ok {
			logger.Verbose().Msgf("Skipping invalid substitute host: %s", line)
			continue
		}
		if _, dup := seen[host]; dup {
			continue
		}
		seen[host] = struct{}{}
		uris = append(uris, uri.ReplaceHost(targetURI, host))
	}

	if len(uris) == 0 {
		return nil, fmt.Errorf("no valid hosts found in substitute hosts file")
	}

	logger.Info().Msgf("Substituting %d hosts into %s", len(uris), targetURI)
	return uris, nil
}

// extractHost reduces a substitute hosts line (bare host, host:port or a
// full URL) to its host.
func extractHost(line string) (string, bool) {
	hostport := line
	if strings.Contains(line, "://") {
		parsed, err := rawurlparser.RawURLParse(line)
		if err != nil || parsed == nil {
			return "", false
		}
		hostport = parsed.Host
	}

	// drop userinfo and port, unwrap IPv6 brackets
	host := uri.Parse("x://" + hostport).Host()
	if host == "" || !helpers.IsHost(host) {
		return "", false
	}
	return host, true
}
