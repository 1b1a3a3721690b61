package config

const configTemplate = `# mapembed configuration file
# Every key can also be set through the environment with a MAPEMBED_
# prefix, e.g. MAPEMBED_API_KEY.

# Google Maps Embed API key (prefer the MAPEMBED_API_KEY environment variable)
# api_key: ${MAPEMBED_API_KEY}

# Map defaults (view mode)
# zoom: 12         # 0-21
# maptype: roadmap # roadmap or satellite

# Localization (omitted from URLs when unset; Google infers them)
# language: en
# region: us

# Directions defaults
# mode: driving    # driving, walking, bicycling, transit
# units: metric    # metric or imperial
# avoid:           # any of tolls, ferries, highways
#   - tolls
`
