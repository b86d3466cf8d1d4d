package countries

// isoCountry is one row of the embedded ISO-3166-1 corpus. Name follows the
// ISO short name; aliases add the common names fuzzy matching is expected to
// hit (e.g. "Russia" for "Russian Federation").
type isoCountry struct {
	alpha2  string
	alpha3  string
	name    string
	aliases []string
}

var isoCountries = []isoCountry{
	{"AF", "AFG", "Afghanistan", nil},
	{"AX", "ALA", "Åland Islands", []string{"Aland Islands"}},
	{"AL", "ALB", "Albania", nil},
	{"DZ", "DZA", "Algeria", nil},
	{"AS", "ASM", "American Samoa", nil},
	{"AD", "AND", "Andorra", nil},
	{"AO", "AGO", "Angola", nil},
	{"AI", "AIA", "Anguilla", nil},
	{"AQ", "ATA", "Antarctica", nil},
	{"AG", "ATG", "Antigua and Barbuda", nil},
	{"AR", "ARG", "Argentina", nil},
	{"AM", "ARM", "Armenia", nil},
	{"AW", "ABW", "Aruba", nil},
	{"AU", "AUS", "Australia", nil},
	{"AT", "AUT", "Austria", nil},
	{"AZ", "AZE", "Azerbaijan", nil},
	{"BS", "BHS", "Bahamas", nil},
	{"BH", "BHR", "Bahrain", nil},
	{"BD", "BGD", "Bangladesh", nil},
	{"BB", "BRB", "Barbados", nil},
	{"BY", "BLR", "Belarus", nil},
	{"BE", "BEL", "Belgium", nil},
	{"BZ", "BLZ", "Belize", nil},
	{"BJ", "BEN", "Benin", nil},
	{"BM", "BMU", "Bermuda", nil},
	{"BT", "BTN", "Bhutan", nil},
	{"BO", "BOL", "Bolivia, Plurinational State of", []string{"Bolivia"}},
	{"BQ", "BES", "Bonaire, Sint Eustatius and Saba", nil},
	{"BA", "BIH", "Bosnia and Herzegovina", nil},
	{"BW", "BWA", "Botswana", nil},
	{"BV", "BVT", "Bouvet Island", nil},
	{"BR", "BRA", "Brazil", nil},
	{"IO", "IOT", "British Indian Ocean Territory", nil},
	{"BN", "BRN", "Brunei Darussalam", []string{"Brunei"}},
	{"BG", "BGR", "Bulgaria", nil},
	{"BF", "BFA", "Burkina Faso", nil},
	{"BI", "BDI", "Burundi", nil},
	{"CV", "CPV", "Cabo Verde", []string{"Cape Verde"}},
	{"KH", "KHM", "Cambodia", nil},
	{"CM", "CMR", "Cameroon", nil},
	{"CA", "CAN", "Canada", nil},
	{"KY", "CYM", "Cayman Islands", nil},
	{"CF", "CAF", "Central African Republic", nil},
	{"TD", "TCD", "Chad", nil},
	{"CL", "CHL", "Chile", nil},
	{"CN", "CHN", "China", nil},
	{"CX", "CXR", "Christmas Island", nil},
	{"CC", "CCK", "Cocos (Keeling) Islands", nil},
	{"CO", "COL", "Colombia", nil},
	{"KM", "COM", "Comoros", nil},
	{"CG", "COG", "Congo", nil},
	{"CD", "COD", "Congo, The Democratic Republic of the", []string{"Democratic Republic of the Congo"}},
	{"CK", "COK", "Cook Islands", nil},
	{"CR", "CRI", "Costa Rica", nil},
	{"CI", "CIV", "Côte d'Ivoire", []string{"Ivory Coast", "Cote d'Ivoire"}},
	{"HR", "HRV", "Croatia", nil},
	{"CU", "CUB", "Cuba", nil},
	{"CW", "CUW", "Curaçao", []string{"Curacao"}},
	{"CY", "CYP", "Cyprus", nil},
	{"CZ", "CZE", "Czechia", []string{"Czech Republic"}},
	{"DK", "DNK", "Denmark", nil},
	{"DJ", "DJI", "Djibouti", nil},
	{"DM", "DMA", "Dominica", nil},
	{"DO", "DOM", "Dominican Republic", nil},
	{"EC", "ECU", "Ecuador", nil},
	{"EG", "EGY", "Egypt", nil},
	{"SV", "SLV", "El Salvador", nil},
	{"GQ", "GNQ", "Equatorial Guinea", nil},
	{"ER", "ERI", "Eritrea", nil},
	{"EE", "EST", "Estonia", nil},
	{"SZ", "SWZ", "Eswatini", []string{"Swaziland"}},
	{"ET", "ETH", "Ethiopia", nil},
	{"FK", "FLK", "Falkland Islands (Malvinas)", []string{"Falkland Islands"}},
	{"FO", "FRO", "Faroe Islands", nil},
	{"FJ", "FJI", "Fiji", nil},
	{"FI", "FIN", "Finland", nil},
	{"FR", "FRA", "France", nil},
	{"GF", "GUF", "French Guiana", nil},
	{"PF", "PYF", "French Polynesia", nil},
	{"TF", "ATF", "French Southern Territories", nil},
	{"GA", "GAB", "Gabon", nil},
	{"GM", "GMB", "Gambia", nil},
	{"GE", "GEO", "Georgia", nil},
	{"DE", "DEU", "Germany", nil},
	{"GH", "GHA", "Ghana", nil},
	{"GI", "GIB", "Gibraltar", nil},
	{"GR", "GRC", "Greece", nil},
	{"GL", "GRL", "Greenland", nil},
	{"GD", "GRD", "Grenada", nil},
	{"GP", "GLP", "Guadeloupe", nil},
	{"GU", "GUM", "Guam", nil},
	{"GT", "GTM", "Guatemala", nil},
	{"GG", "GGY", "Guernsey", nil},
	{"GN", "GIN", "Guinea", nil},
	{"GW", "GNB", "Guinea-Bissau", nil},
	{"GY", "GUY", "Guyana", nil},
	{"HT", "HTI", "Haiti", nil},
	{"HM", "HMD", "Heard Island and McDonald Islands", nil},
	{"VA", "VAT", "Holy See (Vatican City State)", []string{"Vatican City"}},
	{"HN", "HND", "Honduras", nil},
	{"HK", "HKG", "Hong Kong", nil},
	{"HU", "HUN", "Hungary", nil},
	{"IS", "ISL", "Iceland", nil},
	{"IN", "IND", "India", nil},
	{"ID", "IDN", "Indonesia", nil},
	{"IR", "IRN", "Iran, Islamic Republic of", []string{"Iran"}},
	{"IQ", "IRQ", "Iraq", nil},
	{"IE", "IRL", "Ireland", nil},
	{"IM", "IMN", "Isle of Man", nil},
	{"IL", "ISR", "Israel", nil},
	{"IT", "ITA", "Italy", nil},
	{"JM", "JAM", "Jamaica", nil},
	{"JP", "JPN", "Japan", nil},
	{"JE", "JEY", "Jersey", nil},
	{"JO", "JOR", "Jordan", nil},
	{"KZ", "KAZ", "Kazakhstan", nil},
	{"KE", "KEN", "Kenya", nil},
	{"KI", "KIR", "Kiribati", nil},
	{"KP", "PRK", "Korea, Democratic People's Republic of", []string{"North Korea"}},
	{"KR", "KOR", "Korea, Republic of", []string{"South Korea"}},
	{"KW", "KWT", "Kuwait", nil},
	{"KG", "KGZ", "Kyrgyzstan", []string{"Kyrgyz Republic"}},
	{"LA", "LAO", "Lao People's Democratic Republic", []string{"Laos"}},
	{"LV", "LVA", "Latvia", nil},
	{"LB", "LBN", "Lebanon", nil},
	{"LS", "LSO", "Lesotho", nil},
	{"LR", "LBR", "Liberia", nil},
	{"LY", "LBY", "Libya", nil},
	{"LI", "LIE", "Liechtenstein", nil},
	{"LT", "LTU", "Lithuania", nil},
	{"LU", "LUX", "Luxembourg", nil},
	{"MO", "MAC", "Macao", []string{"Macau"}},
	{"MG", "MDG", "Madagascar", nil},
	{"MW", "MWI", "Malawi", nil},
	{"MY", "MYS", "Malaysia", nil},
	{"MV", "MDV", "Maldives", nil},
	{"ML", "MLI", "Mali", nil},
	{"MT", "MLT", "Malta", nil},
	{"MH", "MHL", "Marshall Islands", nil},
	{"MQ", "MTQ", "Martinique", nil},
	{"MR", "MRT", "Mauritania", nil},
	{"MU", "MUS", "Mauritius", nil},
	{"YT", "MYT", "Mayotte", nil},
	{"MX", "MEX", "Mexico", nil},
	{"FM", "FSM", "Micronesia, Federated States of", []string{"Micronesia"}},
	{"MD", "MDA", "Moldova, Republic of", []string{"Moldova"}},
	{"MC", "MCO", "Monaco", nil},
	{"MN", "MNG", "Mongolia", nil},
	{"ME", "MNE", "Montenegro", nil},
	{"MS", "MSR", "Montserrat", nil},
	{"MA", "MAR", "Morocco", nil},
	{"MZ", "MOZ", "Mozambique", nil},
	{"MM", "MMR", "Myanmar", []string{"Burma"}},
	{"NA", "NAM", "Namibia", nil},
	{"NR", "NRU", "Nauru", nil},
	{"NP", "NPL", "Nepal", nil},
	{"NL", "NLD", "Netherlands", nil},
	{"NC", "NCL", "New Caledonia", nil},
	{"NZ", "NZL", "New Zealand", nil},
	{"NI", "NIC", "Nicaragua", nil},
	{"NE", "NER", "Niger", nil},
	{"NG", "NGA", "Nigeria", nil},
	{"NU", "NIU", "Niue", nil},
	{"NF", "NFK", "Norfolk Island", nil},
	{"MK", "MKD", "North Macedonia", []string{"Macedonia"}},
	{"MP", "MNP", "Northern Mariana Islands", nil},
	{"NO", "NOR", "Norway", nil},
	{"OM", "OMN", "Oman", nil},
	{"PK", "PAK", "Pakistan", nil},
	{"PW", "PLW", "Palau", nil},
	{"PS", "PSE", "Palestine, State of", []string{"Palestinian Territory"}},
	{"PA", "PAN", "Panama", nil},
	{"PG", "PNG", "Papua New Guinea", nil},
	{"PY", "PRY", "Paraguay", nil},
	{"PE", "PER", "Peru", nil},
	{"PH", "PHL", "Philippines", nil},
	{"PN", "PCN", "Pitcairn", nil},
	{"PL", "POL", "Poland", nil},
	{"PT", "PRT", "Portugal", nil},
	{"PR", "PRI", "Puerto Rico", nil},
	{"QA", "QAT", "Qatar", nil},
	{"RE", "REU", "Réunion", []string{"Reunion"}},
	{"RO", "ROU", "Romania", nil},
	{"RU", "RUS", "Russian Federation", []string{"Russia"}},
	{"RW", "RWA", "Rwanda", nil},
	{"BL", "BLM", "Saint Barthélemy", []string{"Saint Barthelemy"}},
	{"SH", "SHN", "Saint Helena, Ascension and Tristan da Cunha", []string{"Saint Helena"}},
	{"KN", "KNA", "Saint Kitts and Nevis", nil},
	{"LC", "LCA", "Saint Lucia", nil},
	{"MF", "MAF", "Saint Martin (French part)", nil},
	{"PM", "SPM", "Saint Pierre and Miquelon", nil},
	{"VC", "VCT", "Saint Vincent and the Grenadines", nil},
	{"WS", "WSM", "Samoa", nil},
	{"SM", "SMR", "San Marino", nil},
	{"ST", "STP", "Sao Tome and Principe", nil},
	{"SA", "SAU", "Saudi Arabia", nil},
	{"SN", "SEN", "Senegal", nil},
	{"RS", "SRB", "Serbia", nil},
	{"SC", "SYC", "Seychelles", nil},
	{"SL", "SLE", "Sierra Leone", nil},
	{"SG", "SGP", "Singapore", nil},
	{"SX", "SXM", "Sint Maarten (Dutch part)", nil},
	{"SK", "SVK", "Slovakia", []string{"Slovak Republic"}},
	{"SI", "SVN", "Slovenia", nil},
	{"SB", "SLB", "Solomon Islands", nil},
	{"SO", "SOM", "Somalia", nil},
	{"ZA", "ZAF", "South Africa", nil},
	{"GS", "SGS", "South Georgia and the South Sandwich Islands", nil},
	{"SS", "SSD", "South Sudan", nil},
	{"ES", "ESP", "Spain", nil},
	{"LK", "LKA", "Sri Lanka", nil},
	{"SD", "SDN", "Sudan", nil},
	{"SR", "SUR", "Suriname", nil},
	{"SJ", "SJM", "Svalbard and Jan Mayen", nil},
	{"SE", "SWE", "Sweden", nil},
	{"CH", "CHE", "Switzerland", nil},
	{"SY", "SYR", "Syrian Arab Republic", []string{"Syria"}},
	{"TW", "TWN", "Taiwan, Province of China", []string{"Taiwan"}},
	{"TJ", "TJK", "Tajikistan", nil},
	{"TZ", "TZA", "Tanzania, United Republic of", []string{"Tanzania"}},
	{"TH", "THA", "Thailand", nil},
	{"TL", "TLS", "Timor-Leste", []string{"East Timor"}},
	{"TG", "TGO", "Togo", nil},
	{"TK", "TKL", "Tokelau", nil},
	{"TO", "TON", "Tonga", nil},
	{"TT", "TTO", "Trinidad and Tobago", nil},
	{"TN", "TUN", "Tunisia", nil},
	{"TR", "TUR", "Türkiye", []string{"Turkey", "Turkiye"}},
	{"TM", "TKM", "Turkmenistan", nil},
	{"TC", "TCA", "Turks and Caicos Islands", nil},
	{"TV", "TUV", "Tuvalu", nil},
	{"UG", "UGA", "Uganda", nil},
	{"UA", "UKR", "Ukraine", nil},
	{"AE", "ARE", "United Arab Emirates", nil},
	{"GB", "GBR", "United Kingdom", []string{"United Kingdom of Great Britain and Northern Ireland", "Great Britain"}},
	{"US", "USA", "United States", []string{"United States of America", "USA"}},
	{"UM", "UMI", "United States Minor Outlying Islands", nil},
	{"UY", "URY", "Uruguay", nil},
	{"UZ", "UZB", "Uzbekistan", nil},
	{"VU", "VUT", "Vanuatu", nil},
	{"VE", "VEN", "Venezuela, Bolivarian Republic of", []string{"Venezuela"}},
	{"VN", "VNM", "Viet Nam", []string{"Vietnam"}},
	{"VG", "VGB", "Virgin Islands, British", []string{"British Virgin Islands"}},
	{"VI", "VIR", "Virgin Islands, U.S.", []string{"US Virgin Islands"}},
	{"WF", "WLF", "Wallis and Futuna", nil},
	{"EH", "ESH", "Western Sahara", nil},
	{"YE", "YEM", "Yemen", nil},
	{"ZM", "ZMB", "Zambia", nil},
	{"ZW", "ZWE", "Zimbabwe", nil},
}
