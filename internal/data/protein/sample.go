package protein

// Sample structure and mutation data for TP53, BRCA1, and ALS2.

// SampleOrder is the display order of the embedded records.
var SampleOrder = []string{"TP53", "BRCA1", "ALS2"}

// SampleStore returns a store over the embedded sample records and the
// autocomplete gene list.
func SampleStore() Store {
	return NewStore(SampleRecords(), SampleOrder, SampleGeneList())
}

// SampleRecords returns the embedded per-gene records.
func SampleRecords() map[string]*Record {
	return map[string]*Record{
		"TP53":  tp53(),
		"BRCA1": brca1(),
		"ALS2":  als2(),
	}
}

// SampleGeneList returns the gene autocomplete entries. It is a superset
// of the full records: BRCA2, CFTR, HTT, DMD and SOD1 are stubs.
func SampleGeneList() []GeneSummary {
	return []GeneSummary{
		{Symbol: "TP53", Name: "Tumor Protein p53", Disease: "Li-Fraumeni Syndrome, Various Cancers", Type: "Tumor Suppressor"},
		{Symbol: "BRCA1", Name: "Breast Cancer Type 1", Disease: "Hereditary Breast and Ovarian Cancer", Type: "DNA Repair"},
		{Symbol: "BRCA2", Name: "Breast Cancer Type 2", Disease: "Hereditary Breast and Ovarian Cancer", Type: "DNA Repair"},
		{Symbol: "ALS2", Name: "Alsin Rho GEF", Disease: "Juvenile ALS, Spastic Paraplegia", Type: "Neurological"},
		{Symbol: "CFTR", Name: "Cystic Fibrosis Transmembrane Regulator", Disease: "Cystic Fibrosis", Type: "Ion Channel"},
		{Symbol: "HTT", Name: "Huntingtin", Disease: "Huntington's Disease", Type: "Neurological"},
		{Symbol: "DMD", Name: "Dystrophin", Disease: "Duchenne Muscular Dystrophy", Type: "Structural"},
		{Symbol: "SOD1", Name: "Superoxide Dismutase 1", Disease: "Familial ALS", Type: "Enzyme"},
	}
}

func tp53() *Record {
	return &Record{
		Metadata: Metadata{
			Name:       "Tumor Protein p53",
			GeneSymbol: "TP53",
			UniprotID:  "P04637",
			Length:     393,
			Function:   "Tumor suppressor protein that regulates cell cycle and prevents cancer formation",
			Chromosome: "17p13.1",
			Disease:    "Li-Fraumeni Syndrome, Various Cancers",
		},
		Structure: []Residue{
			// DNA-binding domain (structured, high confidence)
			{94, "LEU", -2.5, 1.2, 0.5, 92},
			{95, "THR", -2.1, 1.5, 1.2, 94},
			{96, "ILE", -1.8, 2.1, 0.8, 93},
			{120, "ARG", 0.5, 2.5, -1.2, 91},
			{175, "ARG", 2.1, 1.8, -0.5, 90},
			{245, "GLY", 3.2, 0.5, 1.1, 89},
			{248, "ARG", 3.5, -0.2, 0.8, 91},
			{249, "PRO", 3.8, -0.8, 1.5, 88},
			{273, "ARG", 2.8, -1.5, -1.2, 90},
			{282, "ARG", 1.5, -2.1, -0.8, 89},
			// Loop regions (lower confidence)
			{163, "VAL", 1.2, 3.5, 0.2, 58},
			{164, "PRO", 0.8, 4.1, -0.5, 52},
			{165, "TYR", 0.3, 4.8, -0.2, 48},
			// Additional structured regions
			{130, "MET", 1.1, 2.8, -2.1, 85},
			{133, "CYS", 0.8, 2.2, -2.8, 87},
			{141, "CYS", -0.5, 1.5, -2.5, 86},
			{176, "HIS", 2.5, 1.2, -0.8, 92},
			{179, "CYS", 2.8, 0.5, -1.5, 88},
			// Tetramerization domain
			{325, "LEU", -3.2, -2.5, 2.1, 78},
			{330, "PHE", -3.8, -3.1, 1.5, 75},
			{338, "LEU", -4.2, -3.8, 0.8, 72},
			// N-terminal domain (less structured)
			{20, "SER", -5.1, 3.2, 2.5, 45},
			{37, "PRO", -4.8, 2.5, 3.1, 38},
			{61, "GLU", -4.2, 1.8, 2.8, 42},
		},
		Mutations: []Mutation{
			{175, "ARG", "HIS", 0.89, "Li-Fraumeni Syndrome, Colorectal Cancer", "Pathogenic", "Common hotspot mutation", "Disrupts DNA binding"},
			{248, "ARG", "GLN", 0.92, "Breast Cancer, Ovarian Cancer", "Pathogenic", "Highly recurrent", "Loss of DNA contact"},
			{273, "ARG", "HIS", 0.87, "Lung Cancer, Glioblastoma", "Pathogenic", "Hotspot in multiple cancers", "Impaired DNA binding"},
			{245, "GLY", "SER", 0.85, "Adrenocortical Carcinoma", "Pathogenic", "Found in pediatric cancers", "Structural disruption"},
			{282, "ARG", "TRP", 0.91, "Colorectal Cancer", "Pathogenic", "Common in CRC", "DNA binding loss"},
			{133, "CYS", "TYR", 0.18, "Uncertain significance", "Likely Benign", "Rare variant", "Minimal effect"},
			{96, "ILE", "VAL", 0.22, "Not associated", "Benign", "Population polymorphism", "Conservative substitution"},
		},
		Hotspots: []Hotspot{
			{
				Name:             "DNA-binding Surface",
				Residues:         []int{175, 245, 248, 273, 282},
				MutationCount:    5,
				AvgPathogenicity: 0.89,
				Description:      "Critical region for DNA contact",
				FunctionalPocket: "DNA recognition helix",
			},
			{
				Name:             "L2-L3 Loop",
				Residues:         []int{163, 164, 165},
				MutationCount:    0,
				AvgPathogenicity: 0,
				Description:      "Flexible loop with low confidence",
				FunctionalPocket: "Structural flexibility region",
			},
		},
		Anomalies: []Anomaly{
			{
				Name:          "N-terminal Transactivation Domain",
				StartResidue:  1,
				EndResidue:    61,
				AvgConfidence: 41,
				AnomalyCount:  3,
				Description:   "Intrinsically disordered region with low pLDDT scores",
			},
			{
				Name:          "L2-L3 Loop Region",
				StartResidue:  163,
				EndResidue:    165,
				AvgConfidence: 52,
				AnomalyCount:  3,
				Description:   "Flexible loop connecting DNA-binding domains",
			},
		},
	}
}

func brca1() *Record {
	return &Record{
		Metadata: Metadata{
			Name:       "Breast Cancer Type 1 Susceptibility Protein",
			GeneSymbol: "BRCA1",
			UniprotID:  "P38398",
			Length:     1863,
			Function:   "DNA repair protein involved in homologous recombination and maintenance of genomic stability",
			Chromosome: "17q21.31",
			Disease:    "Hereditary Breast and Ovarian Cancer Syndrome",
		},
		Structure: []Residue{
			// RING domain (structured)
			{24, "CYS", -3.5, 2.8, 1.5, 88},
			{27, "CYS", -3.2, 3.2, 2.1, 89},
			{44, "CYS", -2.5, 3.8, 1.8, 87},
			{47, "CYS", -2.1, 4.2, 2.5, 86},
			{61, "CYS", -1.5, 4.5, 2.8, 85},
			// BRCT domains (high confidence)
			{1650, "MET", 2.5, -2.1, -1.5, 92},
			{1689, "ARG", 3.1, -2.8, -2.1, 91},
			{1699, "SER", 3.5, -3.2, -2.5, 90},
			{1700, "GLY", 3.8, -3.5, -2.8, 89},
			{1775, "PRO", 4.2, -4.1, -3.2, 88},
			// Linker regions (lower confidence)
			{500, "GLY", 0.2, 0.5, 0.1, 45},
			{750, "SER", 1.1, -0.5, 0.5, 38},
			{1000, "PRO", 1.8, -1.2, -0.2, 42},
			// Additional structured regions
			{1396, "LEU", 2.1, -1.5, -0.8, 82},
			{1756, "GLU", 4.0, -3.8, -3.0, 87},
		},
		Mutations: []Mutation{
			{1699, "SER", "LEU", 0.94, "Hereditary Breast and Ovarian Cancer", "Pathogenic", "Founder mutation in multiple populations", "Disrupts BRCT phosphopeptide binding"},
			{24, "CYS", "ARG", 0.88, "Early-onset Breast Cancer", "Pathogenic", "Affects RING domain zinc binding", "Loss of E3 ubiquitin ligase activity"},
			{61, "CYS", "GLY", 0.90, "Breast and Ovarian Cancer", "Pathogenic", "Common in Ashkenazi Jewish population", "RING domain destabilization"},
			{1775, "PRO", "LEU", 0.15, "Uncertain significance", "Likely Benign", "Rare variant", "Minimal structural impact"},
		},
		Hotspots: []Hotspot{
			{
				Name:             "RING Domain",
				Residues:         []int{24, 27, 44, 47, 61},
				MutationCount:    2,
				AvgPathogenicity: 0.89,
				Description:      "Zinc-binding E3 ubiquitin ligase domain",
				FunctionalPocket: "Zinc coordination site",
			},
			{
				Name:             "BRCT Phosphopeptide Binding",
				Residues:         []int{1650, 1689, 1699, 1700, 1775},
				MutationCount:    2,
				AvgPathogenicity: 0.54,
				Description:      "Critical for protein-protein interactions",
				FunctionalPocket: "Phosphoserine recognition",
			},
		},
		Anomalies: []Anomaly{
			{
				Name:          "Central Linker Region",
				StartResidue:  400,
				EndResidue:    1000,
				AvgConfidence: 41,
				AnomalyCount:  3,
				Description:   "Large intrinsically disordered region connecting domains",
			},
		},
	}
}

func als2() *Record {
	return &Record{
		Metadata: Metadata{
			Name:       "Alsin Rho Guanine Nucleotide Exchange Factor",
			GeneSymbol: "ALS2",
			UniprotID:  "Q96Q42",
			Length:     1657,
			Function:   "Guanine nucleotide exchange factor involved in endosomal trafficking and neuroprotection",
			Chromosome: "2q33.1",
			Disease:    "Juvenile Amyotrophic Lateral Sclerosis, Hereditary Spastic Paraplegia",
		},
		Structure: []Residue{
			// RLD domain
			{687, "LEU", -2.8, 1.5, 0.8, 85},
			{702, "ARG", -2.5, 1.8, 1.2, 87},
			{755, "ILE", -1.8, 2.5, 1.5, 84},
			// DH domain (GEF catalytic domain)
			{991, "LEU", 0.5, -1.2, -0.5, 90},
			{1043, "ARG", 1.2, -1.8, -1.1, 91},
			{1087, "GLU", 1.8, -2.5, -1.5, 89},
			// PH domain
			{1200, "LYS", 2.5, -3.1, -2.1, 86},
			{1245, "ARG", 3.1, -3.8, -2.5, 85},
			// MORN motifs (lower confidence)
			{150, "GLY", -4.5, 3.5, 2.1, 52},
			{250, "SER", -4.1, 3.1, 2.5, 48},
			{350, "PRO", -3.8, 2.8, 2.8, 45},
		},
		Mutations: []Mutation{
			{1043, "ARG", "GLN", 0.86, "Juvenile ALS (ALS2)", "Pathogenic", "Found in consanguineous families", "Impaired GEF activity"},
			{702, "ARG", "TRP", 0.82, "Infantile-onset Ascending Spastic Paralysis", "Pathogenic", "Rare recessive mutation", "Protein destabilization"},
			{1245, "ARG", "HIS", 0.19, "Not associated", "Likely Benign", "Rare population variant", "Conservative substitution"},
		},
		Hotspots: []Hotspot{
			{
				Name:             "DH Domain Active Site",
				Residues:         []int{991, 1043, 1087},
				MutationCount:    1,
				AvgPathogenicity: 0.86,
				Description:      "Catalytic region for Rac1 activation",
				FunctionalPocket: "GEF catalytic center",
			},
			{
				Name:             "RLD-DH Interface",
				Residues:         []int{687, 702, 755},
				MutationCount:    1,
				AvgPathogenicity: 0.82,
				Description:      "Domain-domain interaction surface",
				FunctionalPocket: "Regulatory interface",
			},
		},
		Anomalies: []Anomaly{
			{
				Name:          "MORN Repeat Region",
				StartResidue:  100,
				EndResidue:    400,
				AvgConfidence: 48,
				AnomalyCount:  3,
				Description:   "Membrane occupation recognition nexus repeats with low confidence",
			},
		},
	}
}
